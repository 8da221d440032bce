package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aylinkr/todo/internal/manager"
	"github.com/aylinkr/todo/internal/model"
	"github.com/aylinkr/todo/internal/tui"
	"github.com/aylinkr/todo/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by pending/done
}

// CLI drives both the one-shot subcommands and the interactive loop on
// top of a single list manager.
type CLI struct {
	Manager *manager.Manager
	Opt     Options
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func (c *CLI) Run(args []string) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return c.doList()

	case "ui":
		if err := tui.Run(c.Manager); err != nil {
			ui.Fail("ui: " + err.Error())
			return 1
		}
		return 0

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: todo add <title...>")
			return 2
		}
		return c.doAdd(strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: todo done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return c.doToggle(n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: todo rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return c.doRemove(n)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todo - a tiny todo manager

Usage:
  todo                 Start the interactive prompt
  todo <subcommand> [args]

Subcommands:
  add <title...>     Add a new item (title can be multiple words)
  ls                 List items
  ui                 Interactive full-screen list
  done <index>       Toggle done for item at 1-based index
  rm <index>         Remove item at 1-based index

Examples:
  todo add "Buy milk"
  todo ls
  todo done 2
  todo rm 3
`)
}

// -------------- subcommand impls ----------------

func (c *CLI) doList() int {
	items := c.Manager.List()
	t := ui.Current()

	// Header + progress
	d, p := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymOK), d,
		t.Pending.Render("•"), p,
		t.Accent.Render("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if c.Opt.Group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func (c *CLI) doAdd(title string) int {
	title = strings.TrimSpace(title)
	if title == "" {
		ui.Fail("add: empty title")
		return 2
	}
	t := c.Manager.Add(title)
	ui.OK("added: " + t.Render())
	return 0
}

func (c *CLI) doToggle(userIndex int) int {
	t, err := c.Manager.Toggle(userIndex - 1)
	if err != nil {
		ui.Fail("done: " + err.Error())
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `todo ls` to see valid indexes"))
		return 2
	}
	ui.OK("toggled: " + t.Render())
	return 0
}

func (c *CLI) doRemove(userIndex int) int {
	t, err := c.Manager.Delete(userIndex - 1)
	if err != nil {
		ui.Fail("rm: " + err.Error())
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `todo ls` to see valid indexes"))
		return 2
	}
	ui.OK("removed: " + t.Render())
	return 0
}

// -------------- rendering helpers --------------

func stats(items []model.Todo) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(items []model.Todo) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := t.BoxUnchecked
		style := t.Muted
		if it.Done {
			box, style = t.BoxChecked, t.Success
		}
		title := it.Title
		if len(title) > 80 {
			title = title[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(idx), style.Render(box), title))
	}
	return out
}

func groupLines(items []model.Todo) []string {
	t := ui.Current()
	var pend, done []model.Todo
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
