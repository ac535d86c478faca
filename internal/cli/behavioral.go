package cli

import (
	"fmt"
	"strconv"

	"github.com/sghaida/patterns/behavioral/chain"
	"github.com/sghaida/patterns/behavioral/command"
	"github.com/sghaida/patterns/behavioral/mediator"
	"github.com/sghaida/patterns/behavioral/observer"
	"github.com/sghaida/patterns/behavioral/state"
	"github.com/sghaida/patterns/behavioral/template"
	"github.com/spf13/cobra"
)

const groupBehavioral = "behavioral"

func newBehavioralCmds(a *app) []*cobra.Command {
	return inGroup(groupBehavioral,
		newChainCmd(a),
		&cobra.Command{
			Use:   "command",
			Short: "Edit text with undoable commands",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				ed := &command.Editor{}
				inv := &command.Invoker{}

				a.printer.Title("Command:")
				inv.Execute(command.Write{Editor: ed, Text: "Hello, "})
				inv.Execute(command.Write{Editor: ed, Text: "world!"})
				a.printer.Field("write", strconv.Quote(ed.Text()))
				inv.Execute(command.Erase{Editor: ed, Length: 6})
				a.printer.Field("erase", strconv.Quote(ed.Text()))
				inv.UndoLast()
				a.printer.Field("undo", strconv.Quote(ed.Text()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "mediator [text]",
			Short: "Coordinate dialog widgets through a mediator",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				text := "Hello World"
				if len(args) == 1 {
					text = args[0]
				}

				a.printer.Title("Mediator:")
				d := mediator.NewDialog(a.printer.Writer())
				d.TextBox.EnterText(text)
				d.Button.Click()
				return nil
			},
		},
		&cobra.Command{
			Use:   "observer",
			Short: "Broadcast messages to attached observers",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				a.printer.Title("Observer:")
				w := a.printer.Writer()
				s := &observer.Subject{}
				o1 := &observer.Named{Name: "Observer 1", W: w}
				s.Attach(o1)
				s.Attach(&observer.Named{Name: "Observer 2", W: w})

				s.Notify("Hello Observers!")
				s.Detach(o1)
				s.Notify("Second message")
				return nil
			},
		},
		&cobra.Command{
			Use:   "state",
			Short: "Drive a lift through its idle and moving states",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				a.printer.Title("State:")
				l := state.NewLift(a.printer.Writer())
				l.PressButton(3)
				l.Arrive(3)
				l.PressButton(5)
				l.PressButton(2)
				l.Arrive(5)
				l.Arrive(2)
				a.printer.Field("floor", l.Floor())
				a.printer.Field("state", l.State())
				return nil
			},
		},
		newTemplateCmd(a),
	)
}

func newChainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chain [request...]",
		Short: "Pass integer requests along a chain of handlers",
		Long: `chain sends each request to HandlerA (< 10), HandlerB ([10, 20)) and
HandlerC (>= 20) in turn. With no requests, 5 14 22 3 18 27 are sent.`,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"5", "14", "22", "3", "18", "27"}
			}
			requests := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("chain: invalid request %q: %w", arg, err)
				}
				requests = append(requests, n)
			}

			a.printer.Title("Chain of responsibility:")
			h := chain.Default()
			for _, r := range requests {
				name, err := h.Handle(r)
				if err != nil {
					return err
				}
				a.printer.Line(chain.Describe(name, r))
			}
			return nil
		},
	}
}

func newTemplateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "template [format...]",
		Short: "Run the read, process, save pipeline per format",
		Long: fmt.Sprintf(`template runs the same three step pipeline for each format.
With no formats, every format is processed.

Formats: %v`, template.Formats()),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = template.Formats()
			}

			a.printer.Title("Template method:")
			for i, tag := range args {
				s, err := template.ForFormat(tag)
				if err != nil {
					return err
				}
				if i > 0 {
					a.printer.Line("---")
				}
				template.Process(a.printer.Writer(), s)
			}
			return nil
		},
	}
}
