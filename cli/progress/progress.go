// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package progress

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"go.mondoo.com/cnrestore/logger"
)

// Progress renders completion feedback while features are processed.
type Progress interface {
	Open() error
	OnProgress(current int, total int)
	Close()
}

type Noop struct{}

func (n Noop) Open() error         { return nil }
func (n Noop) OnProgress(int, int) {}
func (n Noop) Close()              {}

type progressbar struct {
	name       string
	padding    int
	completion float32
	complete   bool
	lock       sync.Mutex
	bar        *renderer
	isTTY      bool
	wg         sync.WaitGroup
}

// New creates a progress bar labeled with name, typically the operation
// that is running, e.g. "restoring 5 features".
func New(name string) *progressbar {
	return &progressbar{
		name:  name,
		isTTY: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

func (p *progressbar) Open() error {
	var err error
	p.bar, err = newRenderer()
	if err != nil {
		return errors.Wrap(err, "failed to initialize progressbar renderer")
	}

	p.wg.Add(1)
	if p.isTTY {
		go func() {
			defer p.wg.Done()
			logger.LogOutputWriter.Pause()
			defer logger.LogOutputWriter.Resume()
			if _, err := tea.NewProgram(p).Run(); err != nil {
				fmt.Println(err.Error())
				panic(err)
			}
		}()
	} else {
		go func() {
			defer p.wg.Done()
			o := termenv.NewOutput(os.Stdout)
			for {
				time.Sleep(time.Second / progressPipedFps)
				o.ClearLines(2)
				o.WriteString(p.View())
				p.lock.Lock()
				complete := p.complete
				p.lock.Unlock()
				if complete {
					break
				}
			}
		}()
	}

	return nil
}

func (p *progressbar) OnProgress(current int, total int) {
	p.lock.Lock()
	p.completion = float32(current) / float32(total)
	p.lock.Unlock()
}

func (p *progressbar) Close() {
	p.lock.Lock()
	p.complete = true
	p.lock.Unlock()
	p.wg.Wait()
}

const (
	progressDefaultFps   = 60
	progressDefaultWidth = 80
	progressPipedFps     = 1
)

type tickMsg time.Time

// Init is a required interface method for the underlying renderer
func (p *progressbar) Init() tea.Cmd {
	return tickCmd()
}

// Update is a required interface method for the underlying renderer
func (p *progressbar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		default:
			return p, nil
		}

	case tea.WindowSizeMsg:
		p.bar.Width = msg.Width - p.padding*2 - 4 - len(p.name)
		if p.bar.Width > progressDefaultWidth {
			p.bar.Width = progressDefaultWidth
		}
		return p, nil

	case tickMsg:
		p.lock.Lock()
		complete := p.complete
		p.lock.Unlock()
		if complete {
			return p, tea.Quit
		}
		return p, tickCmd()

	default:
		return p, nil
	}
}

// View is a required interface method for the underlying renderer
func (p *progressbar) View() string {
	pad := strings.Repeat(" ", p.padding)
	return "\n" + pad + p.bar.View(p.completion) + " " + p.name + "\n"
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/progressDefaultFps, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
