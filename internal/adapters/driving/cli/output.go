package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/butch-garage/showroom/internal/core/domain"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	accentColor  = color.New(color.FgYellow)
	dimColor     = color.New(color.Faint)
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgRed)
)

// heading prints a section title with an underline.
func heading(cmd *cobra.Command, title string) {
	out := cmd.OutOrStdout()
	headingColor.Fprintln(out, title)
	dimColor.Fprintln(out, underline(title))
}

func underline(s string) string {
	b := make([]byte, len(s))
	for i := range b {
		b[i] = '='
	}
	return string(b)
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// progress shows a spinner on stderr while a generation runs, cycling
// through the dossier stages. It is silent when stderr is not a terminal.
type progress struct {
	s    *spinner.Spinner
	stop chan struct{}
	done chan struct{}
}

func startProgress(w io.Writer) *progress {
	p := &progress{stop: make(chan struct{}), done: make(chan struct{})}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		close(p.done)
		return p
	}

	p.s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	stages := domain.GenerationStages()
	p.s.Suffix = " " + stages[0].Label
	p.s.Start()

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(1500 * time.Millisecond)
		defer ticker.Stop()
		for i := 1; ; i++ {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				stage := stages[i%len(stages)]
				p.s.Lock()
				p.s.Suffix = " " + stage.Label + ": " + stage.Logs[i%len(stage.Logs)]
				p.s.Unlock()
			}
		}
	}()
	return p
}

func (p *progress) Stop() {
	if p.s == nil {
		return
	}
	close(p.stop)
	<-p.done
	p.s.Stop()
}
