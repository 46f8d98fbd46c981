package simulation

import (
	"fmt"

	"github.com/harlequix/hamfec/channel"
	"github.com/harlequix/hamfec/internal/encoding"
	log "github.com/harlequix/hamfec/log"
)

var logger *log.Logger

func init() {
	logger = log.NewLogger("Simulation")
}

// Result records every intermediate value of one encode, corrupt and
// decode pass.
type Result struct {
	Data      encoding.DataWord
	Parity    encoding.ParityBits
	Codeword  encoding.Codeword
	Corrupted encoding.Codeword
	Injected  int
	Syndrome  encoding.Syndrome
	Corrected encoding.Codeword
	Detected  int
}

// Recovered reports whether the decoder restored the sent codeword and
// blamed the injected position.
func (r Result) Recovered() bool {
	return r.Corrected == r.Codeword && r.Detected == r.Injected
}

// RandomDataWord draws one of the 16 data words.
func RandomDataWord(src channel.RandomSource) encoding.DataWord {
	return encoding.DataWordFromUint(uint8(src.Intn(1 << encoding.DataLen)))
}

// Run pushes data through the channel once with a random flip.
func Run(data encoding.DataWord, src channel.RandomSource) (Result, error) {
	cw := encoding.Encode(data)
	corrupted, pos, err := channel.Corrupt(cw, src)
	if err != nil {
		return Result{}, err
	}
	return finish(data, cw, corrupted, pos)
}

// RunAt is Run with the flipped position chosen by the caller.
func RunAt(data encoding.DataWord, pos int) (Result, error) {
	cw := encoding.Encode(data)
	corrupted, err := channel.CorruptAt(cw, pos)
	if err != nil {
		return Result{}, err
	}
	return finish(data, cw, corrupted, pos)
}

func finish(data encoding.DataWord, cw, corrupted encoding.Codeword, injected int) (Result, error) {
	corrected, detected, err := encoding.Decode(corrupted)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Data:      data,
		Parity:    encoding.Parity(data),
		Codeword:  cw,
		Corrupted: corrupted,
		Injected:  injected,
		Syndrome:  encoding.ComputeSyndrome(corrupted),
		Corrected: corrected,
		Detected:  detected,
	}
	logger.WithField("data", data).
		WithField("codeword", cw).
		WithField("corrupted", corrupted).
		WithField("injected", injected).
		WithField("syndrome", res.Syndrome).
		WithField("detected", detected).
		Debug("pipeline pass")
	return res, nil
}

// Verify runs every data word through every single flip position and
// through a clean channel.
func Verify() error {
	for n := 0; n < 1<<encoding.DataLen; n++ {
		data := encoding.DataWordFromUint(uint8(n))
		cw := encoding.Encode(data)
		got, pos, err := encoding.Decode(cw)
		if err != nil {
			return err
		}
		if got != cw || pos != encoding.NoError {
			return fmt.Errorf("clean %s decoded to %s at %d", cw, got, pos)
		}
		for pos := 1; pos <= encoding.CodewordLen; pos++ {
			res, err := RunAt(data, pos)
			if err != nil {
				return err
			}
			if !res.Recovered() {
				return fmt.Errorf("data %s flip %d: got %s at %d, want %s", data, pos, res.Corrected, res.Detected, cw)
			}
		}
		logger.WithField("data", data).Trace("verified")
	}
	return nil
}
