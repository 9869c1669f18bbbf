// Command chronofold-demo exercises a chronofold interactively or by running
// one of the canned scenarios used to validate convergence (three with two
// replicas, insert-after-delete with one).
//
// Unlike the teacher's cmd/demo, this has no network transport: ops are
// exchanged in-process between replica values, since a transport layer is
// explicitly out of scope here.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/brunokim/chronofold"
)

func main() {
	scenario := flag.String("scenario", "", "run a named convergence scenario and exit: concurrent-insertions, concurrent-deletions, concurrent-replacements, insert-after-delete")
	flag.Parse()

	if *scenario != "" {
		if err := runScenario(*scenario); err != nil {
			log.Fatalf("chronofold-demo: %v", err)
		}
		return
	}
	repl()
}

func runScenario(name string) error {
	switch name {
	case "concurrent-insertions":
		return scenarioConcurrentInsertions()
	case "concurrent-deletions":
		return scenarioConcurrentDeletions()
	case "concurrent-replacements":
		return scenarioConcurrentReplacements()
	case "insert-after-delete":
		return scenarioInsertReferencingDeleted()
	default:
		return fmt.Errorf("unknown scenario %q", name)
	}
}

// sync delivers every op b has applied that a hasn't seen, and vice versa,
// until both replicas' versions agree.
func sync(a, b *chronofold.Chronofold[string, rune]) error {
	for _, op := range b.IterNewerOps(a.Version()) {
		if err := a.Apply(op); err != nil {
			return err
		}
	}
	for _, op := range a.IterNewerOps(b.Version()) {
		if err := b.Apply(op); err != nil {
			return err
		}
	}
	return nil
}

func scenarioConcurrentInsertions() error {
	alice := chronofold.New[string, rune]("alice")
	bob, err := chronofold.FromSnapshot(alice.Snapshot())
	if err != nil {
		return err
	}

	sa := alice.Session("alice")
	sa.PushBack('a')
	sb := bob.Session("bob")
	sb.PushBack('b')

	if err := sync(alice, bob); err != nil {
		return err
	}
	fmt.Printf("alice: %q\n", alice.String())
	fmt.Printf("bob:   %q\n", bob.String())
	if alice.String() != bob.String() {
		return fmt.Errorf("replicas diverged: %q != %q", alice.String(), bob.String())
	}
	return nil
}

func scenarioConcurrentDeletions() error {
	alice := chronofold.New[string, rune]("alice")
	sa := alice.Session("alice")
	idx := sa.PushBack('x')
	bob, err := chronofold.FromSnapshot(alice.Snapshot())
	if err != nil {
		return err
	}

	alice.Session("alice").Remove(idx)
	bob.Session("bob").Remove(idx)

	if err := sync(alice, bob); err != nil {
		return err
	}
	fmt.Printf("alice: %q\n", alice.String())
	fmt.Printf("bob:   %q\n", bob.String())
	return nil
}

func scenarioConcurrentReplacements() error {
	alice := chronofold.New[string, rune]("alice")
	idx := alice.Session("alice").PushBack('x')
	bob, err := chronofold.FromSnapshot(alice.Snapshot())
	if err != nil {
		return err
	}

	sa := alice.Session("alice")
	sa.Remove(idx)
	sa.InsertAfter(idx, 'y')

	sb := bob.Session("bob")
	sb.Remove(idx)
	sb.InsertAfter(idx, 'z')

	if err := sync(alice, bob); err != nil {
		return err
	}
	fmt.Printf("alice: %q\n", alice.String())
	fmt.Printf("bob:   %q\n", bob.String())
	if alice.String() != bob.String() {
		return fmt.Errorf("replicas diverged: %q != %q", alice.String(), bob.String())
	}
	return nil
}

func scenarioInsertReferencingDeleted() error {
	alice := chronofold.New[string, rune]("alice")
	sa := alice.Session("alice")
	idx := sa.PushBack('!')
	sa.Clear()
	sa.InsertAfter(idx, '?')
	fmt.Printf("alice: %q\n", alice.String())
	if alice.String() != "?" {
		return fmt.Errorf("want %q, got %q", "?", alice.String())
	}
	return nil
}

// repl runs a single-replica interactive session over stdin: push/insert/
// remove/clear/print/log/quit commands against one author's chronofold.
func repl() {
	cf := chronofold.New[string, rune]("repl")
	session := cf.Session("repl")

	fmt.Println("chronofold-demo REPL. Commands: push <text>, insert <index> <text>, remove <index>, clear, print, log, quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 3)
		switch fields[0] {
		case "push":
			if len(fields) < 2 {
				fmt.Println("usage: push <text>")
				continue
			}
			for _, r := range fields[1] {
				session.PushBack(r)
			}
		case "insert":
			if len(fields) < 3 {
				fmt.Println("usage: insert <index> <text>")
				continue
			}
			var index int
			if _, err := fmt.Sscanf(fields[1], "%d", &index); err != nil {
				fmt.Println("bad index:", fields[1])
				continue
			}
			anchor := chronofold.LogIndex(index)
			for _, r := range fields[2] {
				anchor = session.InsertAfter(anchor, r)
			}
		case "remove":
			if len(fields) < 2 {
				fmt.Println("usage: remove <index>")
				continue
			}
			var index int
			if _, err := fmt.Sscanf(fields[1], "%d", &index); err != nil {
				fmt.Println("bad index:", fields[1])
				continue
			}
			session.Remove(chronofold.LogIndex(index))
		case "clear":
			session.Clear()
		case "print":
			fmt.Printf("%q\n", cf.String())
		case "log":
			fmt.Print(cf.FormattedLog())
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}
