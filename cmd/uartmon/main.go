// Command uartmon is a host-side monitor for a board's UART: it pumps the
// board's output to stdout and turns typed command lines into writes on the
// serial port.
//
//	uartmon -dev /dev/ttyUSB0 -baud 19200
//
// Commands (one per line, split shell-style):
//
//	send <text...>   write the text followed by CR
//	hex <aa> [bb..]  write raw bytes given in hex
//	quit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/tarm/serial"
)

func main() {
	dev := flag.String("dev", "/dev/ttyUSB0", "serial device")
	baud := flag.Int("baud", 19200, "baud rate")
	flag.Parse()

	port, err := serial.OpenPort(&serial.Config{
		Name:        *dev,
		Baud:        *baud,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("open %s: %v", *dev, err)
	}
	defer port.Close()

	// Pump board output to stdout.
	go func() {
		buf := make([]byte, 256)
		for {
			n, _ := port.Read(buf)
			if n > 0 {
				os.Stdout.Write(buf[:n])
			}
		}
	}()

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		words, err := shlex.Split(in.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse:", err)
			continue
		}
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "send":
			line := strings.Join(words[1:], " ")
			if _, err := port.Write(append([]byte(line), '\r')); err != nil {
				log.Printf("write: %v", err)
			}
		case "hex":
			out, err := parseHexBytes(words[1:])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			if len(out) > 0 {
				if _, err := port.Write(out); err != nil {
					log.Printf("write: %v", err)
				}
			}
		case "quit":
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", words[0])
		}
	}
}

func parseHexBytes(words []string) ([]byte, error) {
	out := make([]byte, 0, len(words))
	for _, w := range words {
		v, err := strconv.ParseUint(strings.TrimPrefix(w, "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad byte %q", w)
		}
		out = append(out, byte(v))
	}
	return out, nil
}
