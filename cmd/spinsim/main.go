// Command spinsim runs one spin-glass simulation over a DIMACS-style
// instance file and prints the final energy and spin configuration.
//
// Interactive mode (no arguments) prompts for the instance filename, the
// number of sweeps, and the temperature — empty input takes the default.
// One-shot mode takes the same values as arguments:
//
//	spinsim [file [steps [temperature]]]
//
// Defaults come from the environment (loaded from .env when present):
// SPINSIM_FILE, SPINSIM_STEPS, SPINSIM_TEMP, SPINSIM_SEED.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/pkazanov/spinglass/instance"
	"github.com/pkazanov/spinglass/ising"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("spinsim: ")

	// Load env defaults
	_ = godotenv.Load(".env")
	file := envString("SPINSIM_FILE", "data.txt")
	steps := envInt("SPINSIM_STEPS", 10)
	temp := envFloat("SPINSIM_TEMP", 1.0)
	seed := int64(envInt("SPINSIM_SEED", 0))

	var err error
	if len(os.Args) > 1 {
		file, steps, temp, err = argsParams(os.Args[1:], file, steps, temp)
	} else {
		file, steps, temp, err = promptParams(file, steps, temp)
	}
	if err != nil {
		log.Fatal(err)
	}

	runID := uuid.New()
	inst, err := instance.ParseFile(file)
	if err != nil {
		log.Fatal(err)
	}

	rng := ising.RNGFromSeed(seed)
	model, err := inst.Build(rng)
	if err != nil {
		log.Fatal(err)
	}
	energy, err := ising.Evolve(model, steps, temp, rng)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("run %s: %d nodes, %d sweeps, T=%g\n", runID, model.NodeCount(), steps, temp)
	fmt.Printf("\nOutput:\n\n %d\n\n", energy)
	fmt.Println(spaced(model.SpinString()))
}

// argsParams fills run parameters from positional arguments, falling back
// to the supplied defaults for anything omitted. Anything beyond the third
// argument is an invocation error, not something to drop on the floor.
func argsParams(args []string, file string, steps int, temp float64) (string, int, float64, error) {
	if len(args) > 3 {
		return "", 0, 0, fmt.Errorf("unexpected arguments %q; usage: spinsim [file [steps [temperature]]]", args[3:])
	}
	file = args[0]
	var err error
	if len(args) > 1 {
		if steps, err = strconv.Atoi(args[1]); err != nil {
			return "", 0, 0, fmt.Errorf("bad step count %q: %w", args[1], err)
		}
	}
	if len(args) > 2 {
		if temp, err = strconv.ParseFloat(args[2], 64); err != nil {
			return "", 0, 0, fmt.Errorf("bad temperature %q: %w", args[2], err)
		}
	}
	return file, steps, temp, nil
}

// promptParams collects run parameters interactively. Empty input takes the
// default; malformed numeric input re-prompts.
func promptParams(file string, steps int, temp float64) (string, int, float64, error) {
	rl, err := readline.New("")
	if err != nil {
		return "", 0, 0, err
	}
	defer rl.Close()

	fmt.Println("Reminder: your data file must be readable from the current directory.")

	file, err = promptString(rl, fmt.Sprintf("Please enter the filename (%s): ", file), file)
	if err != nil {
		return "", 0, 0, err
	}
	steps, err = promptInt(rl, fmt.Sprintf("Number of steps (%d)? ", steps), steps)
	if err != nil {
		return "", 0, 0, err
	}
	temp, err = promptFloat(rl, fmt.Sprintf("Temperature, a float greater than zero (%g): ", temp), temp)
	if err != nil {
		return "", 0, 0, err
	}
	return file, steps, temp, nil
}

func promptString(rl *readline.Instance, prompt, def string) (string, error) {
	rl.SetPrompt(prompt)
	line, err := rl.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return "", errors.New("aborted")
		}
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func promptInt(rl *readline.Instance, prompt string, def int) (int, error) {
	for {
		raw, err := promptString(rl, prompt, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Printf("not an integer: %q\n", raw)
			continue
		}
		return v, nil
	}
}

func promptFloat(rl *readline.Instance, prompt string, def float64) (float64, error) {
	for {
		raw, err := promptString(rl, prompt, strconv.FormatFloat(def, 'g', -1, 64))
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Printf("not a number: %q\n", raw)
			continue
		}
		return v, nil
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("bad %s %q: %v", key, v, err)
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("bad %s %q: %v", key, v, err)
	}
	return f
}

// spaced renders "+-+" as "+ - +", matching the classic printout.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
