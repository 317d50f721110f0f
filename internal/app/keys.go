package app

import "github.com/grovetools/jsonview/internal/term"

func isDigit(k term.Key) bool {
	return k.Name == "" && !k.Ctrl && k.Rune >= '0' && k.Rune <= '9'
}

// handleNormalKey dispatches the normal-mode key bindings: movement,
// scrolling, expansion, search, and misc — honoring a pending count
// prefix via Controller.GetNum.
func (a *App) handleNormalKey(k term.Key) {
	if isDigit(k) {
		a.Ctrl.PushDigit(byte(k.Rune))
		return
	}
	if k.Rune == 'z' {
		if a.pendingZ {
			a.pendingZ = false
			a.Ctrl.ResetNum()
			a.Ctrl.Center(a.Dev)
		} else {
			a.pendingZ = true
		}
		return
	}
	a.pendingZ = false
	count := a.Ctrl.GetNum()

	switch {
	case k.Rune == 'j', k.Name == "Down":
		a.Ctrl.MoveNext(a.Dev, count)
	case k.Rune == 'k', k.Name == "Up":
		a.Ctrl.MovePrev(a.Dev, count)
	case k.Rune == 'J':
		a.Ctrl.MoveNextSibling(a.Dev, count)
	case k.Rune == 'K':
		a.Ctrl.MovePrevSibling(a.Dev, count)
	case k.Rune == 'p':
		a.Ctrl.MoveParent(a.Dev)
	case k.Rune == 'g':
		a.Ctrl.MoveFirst(a.Dev, count)
	case k.Rune == 'G':
		a.Ctrl.MoveLast(a.Dev, count)
	case k.Name == "Home":
		a.Ctrl.MoveFirst(a.Dev, count)
	case k.Name == "End":
		a.Ctrl.MoveLast(a.Dev, count)
	case k.Rune == 'H':
		a.Ctrl.ScreenTop(a.Dev)
	case k.Rune == 'M':
		a.Ctrl.ScreenMiddle(a.Dev)
	case k.Rune == 'L':
		a.Ctrl.ScreenBottom(a.Dev)
	case k.Ctrl && k.Rune == 'e':
		a.Ctrl.Scroll(a.Dev, count)
	case k.Ctrl && k.Rune == 'y':
		a.Ctrl.Scroll(a.Dev, -count)
	case (k.Ctrl && k.Rune == 'f') || k.Name == "PageDown":
		a.Ctrl.Scroll(a.Dev, count*a.Ctrl.Height)
	case (k.Ctrl && k.Rune == 'b') || k.Name == "PageUp":
		a.Ctrl.Scroll(a.Dev, -count*a.Ctrl.Height)
	case k.Ctrl && k.Rune == 'd':
		a.Ctrl.Scroll(a.Dev, count*a.Ctrl.Height/2)
	case k.Ctrl && k.Rune == 'u':
		a.Ctrl.Scroll(a.Dev, -count*a.Ctrl.Height/2)
	case k.Rune == ' ':
		a.Ctrl.ToggleSel(a.Dev)
	case k.Rune == 'w':
		a.Ctrl.RecursiveExpand(a.Dev)
	case k.Rune == '/':
		a.beginSearch(true)
	case k.Rune == '?':
		a.beginSearch(false)
	case k.Rune == 'n':
		a.Ctrl.SearchNext(a.Dev, count, a.lastSearchForward)
	case k.Rune == 'N':
		a.Ctrl.SearchNext(a.Dev, count, !a.lastSearchForward)
	case k.Rune == 'c' && !k.Ctrl:
		a.Ctrl.SetQuery(a.Dev, "")
	case k.Rune == 'y':
		a.Ctrl.ShowMessage(a.Dev, a.Ctrl.Sel.Value.PathString())
	case k.Ctrl && k.Rune == 'l':
		a.Ctrl.Repaint(a.Dev)
	case k.Rune == 'q', k.Ctrl && k.Rune == 'c':
		a.quit = true
	}
}

// handleSearchKey routes keystrokes to the prompt editor while the search
// query is being typed, honoring Enter (commit), Esc (cancel back to the
// exact pre-search state), and ordinary editing keys.
func (a *App) handleSearchKey(k term.Key) {
	switch {
	case k.Name == "Enter":
		q := a.Prompt.Submit()
		a.mode = ModeNormal
		a.lastSearchForward = a.searchForward
		a.Ctrl.SetQuery(a.Dev, q)
		if q != "" {
			a.Ctrl.SearchNext(a.Dev, 1, a.searchForward)
		}
		return
	case k.Name == "Esc":
		a.mode = ModeNormal
		a.restoreSnapshot()
		return
	case k.Name == "Backspace":
		a.Prompt.DeleteBackward()
	case k.Name == "Delete":
		a.Prompt.DeleteForward()
	case k.Name == "Left":
		a.Prompt.MoveLeft()
	case k.Name == "Right":
		a.Prompt.MoveRight()
	case k.Name == "Home":
		a.Prompt.Home()
	case k.Name == "End":
		a.Prompt.End()
	case k.Name == "Up":
		a.Prompt.HistoryPrev()
	case k.Name == "Down":
		a.Prompt.HistoryNext()
	case k.Ctrl && k.Rune == 'u':
		a.Prompt.Home()
		a.Prompt.ClearToEnd()
	default:
		if k.Rune != 0 && !k.Ctrl {
			a.Prompt.Insert(string(k.Rune))
		}
	}
	a.drawPromptLine()
}
