package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Loop runs the interactive prompt until the exit command or EOF. One
// command per line; add, toggle and delete prompt for one more line
// before dispatching to the manager.
func (c *CLI) Loop(in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nEnter a command (add, list, toggle, delete, exit): ")
		if !sc.Scan() {
			return
		}
		cmd := strings.ToLower(strings.TrimSpace(sc.Text()))

		switch cmd {
		case "exit":
			fmt.Fprintln(out, "Goodbye!")
			return

		case "list":
			c.printList(out)

		case "add":
			fmt.Fprint(out, "Enter the todo title: ")
			if !sc.Scan() {
				return
			}
			// Trimmed but otherwise unvalidated; empty titles pass through.
			t := c.Manager.Add(strings.TrimSpace(sc.Text()))
			fmt.Fprintln(out, "Added:", t.Render())

		case "toggle":
			c.printList(out)
			i, ok := readIndex(sc, out)
			if !ok {
				continue
			}
			t, err := c.Manager.Toggle(i)
			if err != nil {
				fmt.Fprintf(out, "No todo at position %d.\n", i+1)
				continue
			}
			fmt.Fprintln(out, "Toggled:", t.Render())

		case "delete":
			c.printList(out)
			i, ok := readIndex(sc, out)
			if !ok {
				continue
			}
			t, err := c.Manager.Delete(i)
			if err != nil {
				fmt.Fprintf(out, "No todo at position %d.\n", i+1)
				continue
			}
			fmt.Fprintln(out, "Deleted:", t.Render())

		default:
			fmt.Fprintf(out, "Command %q not recognized. Try: add, list, toggle, delete, exit\n", cmd)
		}
	}
}

func (c *CLI) printList(out io.Writer) {
	items := c.Manager.List()
	if len(items) == 0 {
		fmt.Fprintln(out, "No todos yet.")
		return
	}
	for i, t := range items {
		fmt.Fprintf(out, "%d.) %s\n", i+1, t.Render())
	}
}

// readIndex prompts for a 1-based position and converts it to a 0-based
// index. Non-numeric input is reported and skips the dispatch.
func readIndex(sc *bufio.Scanner, out io.Writer) (int, bool) {
	fmt.Fprint(out, "Enter the todo number: ")
	if !sc.Scan() {
		return 0, false
	}
	raw := strings.TrimSpace(sc.Text())
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintf(out, "Not a number: %q\n", raw)
		return 0, false
	}
	return n - 1, true
}
