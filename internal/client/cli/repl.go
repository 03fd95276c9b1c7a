package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. Tests replace it
// with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface is the minimal command surface the REPL needs. The real
// App satisfies it; tests provide a lightweight stub.
type execIface interface {
	editable() bool
	Status(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context) error
	Next(ctx context.Context) error
	Back(ctx context.Context) error
	Save(ctx context.Context) error
	Devices(ctx context.Context) error
	AddDevice(ctx context.Context) error
	RemoveDevice(ctx context.Context, id string) error
	Servers(ctx context.Context) error
	AddServer(ctx context.Context) error
	RemoveServer(ctx context.Context, id string) error
	Import(ctx context.Context, path string) error
	Template(ctx context.Context, path string) error
	Submit(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command and dispatches to methods on a. Unknown commands are
// reported back. The loop exits on scanner EOF or "exit"/"quit".
//
// Command handlers report their own errors; the loop stays resilient
// and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("amc %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.editable() {
				printlnFn("Available commands: status, show [step], edit, next, back, save,")
				printlnFn("  devices, adddevice, rmdevice <id>, servers, addserver, rmserver <id>,")
				printlnFn("  import <file.xlsx>, template [out.xlsx], submit, exit")
			} else {
				printlnFn("Record is read-only. Available commands: status, show [step], template [out.xlsx], exit")
			}

		case "status":
			_ = a.Status(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "edit":
			_ = a.Edit(ctx)

		case "next", "n":
			_ = a.Next(ctx)

		case "back", "b":
			_ = a.Back(ctx)

		case "save":
			_ = a.Save(ctx)

		case "devices":
			_ = a.Devices(ctx)

		case "adddevice":
			_ = a.AddDevice(ctx)

		case "rmdevice":
			if len(args) == 0 {
				printlnFn("Usage: rmdevice <id>")
				continue
			}
			_ = a.RemoveDevice(ctx, args[0])

		case "servers":
			_ = a.Servers(ctx)

		case "addserver":
			_ = a.AddServer(ctx)

		case "rmserver":
			if len(args) == 0 {
				printlnFn("Usage: rmserver <id>")
				continue
			}
			_ = a.RemoveServer(ctx, args[0])

		case "import":
			if len(args) == 0 {
				printlnFn("Usage: import <file.xlsx>")
				continue
			}
			_ = a.Import(ctx, args[0])

		case "template":
			path := "device-template.xlsx"
			if len(args) > 0 {
				path = args[0]
			}
			_ = a.Template(ctx, path)

		case "submit":
			_ = a.Submit(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
