// Command dx7play is an interactive live-playback demo for the DX7-style
// FM engine. It reads simple commands from stdin and plays notes in
// real time through the default audio output.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	dx7fm "github.com/cbegin/dx7fm-go"
	"github.com/cbegin/dx7fm-go/internal/preset"
)

func main() {
	var (
		sampleRate = flag.Int("samplerate", 44100, "sample rate in Hz")
		presetName = flag.String("preset", "INIT VOICE", "factory preset name")
		effects    = flag.String("effects", "", `effect chain, e.g. "delay 250,0.4,0.2,0.3;reverb 0.5,0.7,0.25"`)
	)
	flag.Parse()

	p, ok := preset.Factory()[*presetName]
	if !ok {
		log.Fatalf("unknown preset %q", *presetName)
	}

	player, err := dx7fm.NewPlayer(*sampleRate, dx7fm.WithPreset(p), dx7fm.WithEffectChain(*effects))
	if err != nil {
		log.Fatalf("new player: %v", err)
	}
	defer player.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	commands := make(chan string)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(commands)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case commands <- scanner.Text():
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return scanner.Err()
	})

	g.Go(func() error {
		fmt.Println("commands: on <note> <vel> | off <note> | panic | preset <name> | quit")
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case line, ok := <-commands:
				if !ok {
					return nil
				}
				if strings.TrimSpace(line) == "quit" {
					return nil
				}
				if err := dispatch(player, line); err != nil {
					fmt.Fprintln(os.Stderr, "error:", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Fatal(err)
	}
}

func dispatch(player *dx7fm.Player, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "on":
		if len(fields) != 3 {
			return fmt.Errorf("usage: on <note> <velocity>")
		}
		note, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		vel, err := strconv.Atoi(fields[2])
		if err != nil {
			return err
		}
		player.NoteOn(note, vel)
	case "off":
		if len(fields) != 2 {
			return fmt.Errorf("usage: off <note>")
		}
		note, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		player.NoteOff(note)
	case "panic":
		player.Panic()
	case "preset":
		if len(fields) < 2 {
			return fmt.Errorf("usage: preset <name>")
		}
		name := strings.Join(fields[1:], " ")
		p, ok := preset.Factory()[name]
		if !ok {
			return fmt.Errorf("unknown preset %q", name)
		}
		player.LoadPreset(p)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
