package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/harlequix/hamfec/internal/encoding"
	"github.com/harlequix/hamfec/simulation"
	"github.com/jinzhu/copier"
)

const ruleWidth = 72

type Report struct {
	Data      encoding.DataWord
	Parity    encoding.ParityBits
	Codeword  encoding.Codeword
	Corrupted encoding.Codeword
	Injected  int
	Syndrome  encoding.Syndrome
	Corrected encoding.Codeword
	Detected  int
	Recovered bool
}

// NewReport snapshots a pipeline result. Recovered is filled from the
// method of the same name.
func NewReport(res simulation.Result) (*Report, error) {
	report := &Report{}
	if err := copier.Copy(report, &res); err != nil {
		return nil, err
	}
	return report, nil
}

func rule() string {
	return strings.Repeat("=", ruleWidth)
}

// Lines returns the report, one labelled value per line.
func (r *Report) Lines() []string {
	out := []string{
		fmt.Sprintf("4-digit data bits:          %s", r.Data),
		fmt.Sprintf("3-digit redundant bits:     %s", r.Parity),
		fmt.Sprintf("7-digit codeword:           %s", r.Codeword),
	}
	if r.Injected != encoding.NoError {
		out = append(out, fmt.Sprintf("Corrupted 7-digit codeword: %s (Error at position: %d)", r.Corrupted, r.Injected))
	} else {
		out = append(out, fmt.Sprintf("Received 7-digit codeword:  %s", r.Corrupted))
	}
	out = append(out, fmt.Sprintf("Syndrome (s3 s2 s1):        %s", r.Syndrome))
	if r.Detected != encoding.NoError {
		out = append(out, fmt.Sprintf("Corrected codeword:         %s (Error corrected at position: %d)", r.Corrected, r.Detected))
	} else {
		out = append(out, "No error detected. Codeword is correct.")
	}
	if r.Injected != encoding.NoError {
		if r.Recovered {
			out = append(out, "Result: original codeword recovered.")
		} else {
			out = append(out, "Result: MISMATCH, corrected codeword differs from the one sent.")
		}
	}
	return out
}

func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Render writes the report framed by rules.
func (r *Report) Render(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(rule())
	sb.WriteByte('\n')
	for _, line := range r.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(rule())
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderStats writes a trial summary.
func RenderStats(w io.Writer, stats simulation.Stats) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "trials:     %d\n", stats.Trials)
	fmt.Fprintf(&sb, "recovered:  %d\n", stats.Recovered)
	fmt.Fprintf(&sb, "mismatched: %d\n", stats.Mismatched)
	for pos := 1; pos < len(stats.ByPosition); pos++ {
		fmt.Fprintf(&sb, "position %d: %d\n", pos, stats.ByPosition[pos])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
