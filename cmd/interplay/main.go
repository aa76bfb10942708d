// Command interplay is a demo binary wiring the MIDI output, the
// realtime coordinator, the HTTP control surface, and the debug
// console together — the same shape as the reference sequencer's
// main.go, generalized from a single fixed 16-step pattern to the full
// named-pattern registry.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/iltempo/interplay/console"
	"github.com/iltempo/interplay/coordinator"
	"github.com/iltempo/interplay/midi"
	"github.com/iltempo/interplay/queue"
	"github.com/iltempo/interplay/transport"
)

const (
	defaultSampleRate = 48000.0
	defaultTempo      = 120.0
	bufferSize        = 256
	listenAddr        = "127.0.0.1:3000"
)

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func main() {
	scriptFile := flag.String("script", "", "execute console commands from file")
	addr := flag.String("listen", listenAddr, "HTTP control surface listen address")
	tempo := flag.Float64("tempo", defaultTempo, "initial tempo (quarter notes per minute)")
	flag.Parse()

	ports, err := midi.ListPorts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing MIDI ports: %v\n", err)
		os.Exit(1)
	}
	if len(ports) == 0 {
		fmt.Fprintln(os.Stderr, "No MIDI output ports found")
		os.Exit(1)
	}

	fmt.Println("Available MIDI ports:")
	for i, port := range ports {
		fmt.Printf("  %d: %s\n", i, port)
	}

	inBatchMode := *scriptFile != "" || !isTerminal()
	portIndex := 0
	if len(ports) > 1 && !inBatchMode {
		rl, err := readline.New(fmt.Sprintf("Select MIDI port (0-%d): ", len(ports)-1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating readline: %v\n", err)
			os.Exit(1)
		}
		input, err := rl.Readline()
		rl.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}
		portIndex, err = strconv.Atoi(strings.TrimSpace(input))
		if err != nil || portIndex < 0 || portIndex >= len(ports) {
			fmt.Fprintf(os.Stderr, "Invalid port selection: %s\n", input)
			os.Exit(1)
		}
	}
	fmt.Printf("Using port %d: %s\n\n", portIndex, ports[portIndex])

	out, err := midi.Open(portIndex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening MIDI port: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	cmds := queue.New()
	onError := func(err error) { fmt.Fprintf(os.Stderr, "coordinator: %v\n", err) }
	coord := coordinator.New(out, cmds, defaultSampleRate, *tempo, onError)

	stop := make(chan struct{})
	go runAudioClock(coord, stop)
	defer close(stop)

	router := transport.NewRouter(cmds, coord)
	go func() {
		if err := router.Run(*addr); err != nil {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()
	fmt.Printf("HTTP control surface listening on %s\n", *addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down gracefully...")
		close(stop)
		os.Exit(0)
	}()

	cmdHandler := console.New(cmds, coord)

	if *scriptFile != "" {
		f, err := os.Open(*scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script file: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()

		ok, shouldExit := cmdHandler.ProcessBatch(f)
		if shouldExit {
			if ok {
				os.Exit(0)
			}
			os.Exit(1)
		}
		fmt.Println("\nScript completed. Playback continues. Press Ctrl+C to exit.")
		select {}
	}

	if isTerminal() {
		if err := cmdHandler.ReadLoop(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading commands: %v\n", err)
			os.Exit(1)
		}
	} else {
		ok, shouldExit := cmdHandler.ProcessBatch(os.Stdin)
		if shouldExit {
			if ok {
				os.Exit(0)
			}
			os.Exit(1)
		}
		fmt.Println("\nBatch commands completed. Playback continues. Press Ctrl+C to exit.")
		select {}
	}

	fmt.Println("Goodbye!")
}

// runAudioClock steps the coordinator once per simulated audio buffer.
// A real host drives ProcessCycle from its audio callback; this is the
// free-running stand-in used when interplay runs as its own process.
func runAudioClock(coord *coordinator.Coordinator, stop <-chan struct{}) {
	interval := time.Duration(bufferSize / defaultSampleRate * float64(time.Second))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var songPos int64
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			coord.ProcessCycle(songPos, bufferSize)
			songPos += bufferSize
		}
	}
}
