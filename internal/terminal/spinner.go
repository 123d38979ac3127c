// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"fmt"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

func spinnerFrame(i int, text string) string {
	return fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], text)
}

// StartSpinner draws a single-line stick spinner followed by text on stdout
// until the returned function is called. The stop function removes the
// spinner, restores the cursor and is safe to call more than once.
func StartSpinner(text string) func() {
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start(spinnerFrame(0, text))
	if err != nil {
		cursor.Show()
		return func() {}
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				i++
				area.Update(spinnerFrame(i, text))
			case <-stop:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
			_ = area.Stop()
			cursor.Show()
		})
	}
}
