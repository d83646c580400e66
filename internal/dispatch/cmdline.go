package dispatch

import (
	"os"

	"spot/internal/buffer"
	"spot/internal/keys"
)

func (d *Dispatch) enterCommandLine(op cmdOp) {
	d.state = stCommandLine
	d.op = op
	d.Cmdline = buffer.New()
}

func (d *Dispatch) handleCommandLineKey(ev keys.KeyEvent) {
	if isCtrl(ev, 'g') {
		d.state = stRoot
		d.op = opNone
		return
	}
	if ev.Key == keys.Enter {
		d.commitCommandLine()
		d.state = stRoot
		return
	}

	b := d.Cmdline
	switch {
	case ev.Key == keys.ArrowLeft || isCtrl(ev, 'b'):
		d.fail(b.MoveLeft(1))
	case ev.Key == keys.ArrowRight || isCtrl(ev, 'f'):
		d.fail(b.MoveRight(1))
	case ev.Key == keys.Backspace || isCtrl(ev, 'h'):
		d.fail(b.Backspace(1))
	case ev.Key == keys.Delete || isCtrl(ev, 'd'):
		d.fail(b.DeleteChar(1))
	case ev.Key == keys.Home || isCtrl(ev, 'a'):
		d.fail(b.StartOfLine())
	case ev.Key == keys.End || isCtrl(ev, 'e'):
		d.fail(b.EndOfLine())
	case ev.Key == keys.Char && !ev.Ctrl:
		d.fail(b.InsertChar(ev.Byte, 1))
	}
}

func (d *Dispatch) commitCommandLine() {
	op := d.op
	d.op = opNone
	content := append([]byte(nil), d.Cmdline.Bytes()...)
	b := d.Set.Active()

	switch op {
	case opSearch:
		d.SearchReg.Set(content)
		st, err := buffer.NewShiftTable(d.SearchReg.Bytes())
		if !d.fail(err) {
			return
		}
		d.searchTable = st
		d.fail(b.Search(st))
	case opRename:
		b.Filename = string(content)
		b.HasFilename = true
	case opInsertFile:
		d.fail(b.InsertFile(string(content)))
	case opNewBuffer:
		d.Set.Add(buffer.Open(string(content)))
	case opRegexRegion:
		d.commitRegexRegion(content)
	}
}

// commitRegexRegion runs the marked region through the external
// substitutor: script and region are each written to scratch files, the
// substitutor's stdout becomes a third scratch file, and that file's
// contents replace the region on success.
func (d *Dispatch) commitRegexRegion(script []byte) {
	b := d.Set.Active()

	scriptFile, err := os.CreateTemp("", "spot-script-*")
	if !d.fail(err) {
		return
	}
	scriptPath := scriptFile.Name()
	defer os.Remove(scriptPath)
	if _, err := scriptFile.Write(script); !d.fail(err) {
		scriptFile.Close()
		return
	}
	if err := scriptFile.Close(); !d.fail(err) {
		return
	}

	inputFile, err := os.CreateTemp("", "spot-input-*")
	if !d.fail(err) {
		return
	}
	inputPath := inputFile.Name()
	inputFile.Close()
	if !d.fail(b.WriteRegion(inputPath)) {
		os.Remove(inputPath)
		return
	}

	outputFile, err := os.CreateTemp("", "spot-output-*")
	if !d.fail(err) {
		os.Remove(inputPath)
		return
	}
	outputPath := outputFile.Name()
	outputFile.Close()
	defer os.Remove(outputPath)

	if !d.fail(d.Sub.Run(scriptPath, inputPath, outputPath)) {
		os.Remove(inputPath)
		return
	}

	if !d.fail(b.ReplaceRegionFromFile(outputPath)) {
		os.Remove(inputPath)
		return
	}

	if d.lastRegexOK {
		os.Remove(d.lastRegexInputPath)
	}
	d.lastRegexInputPath = inputPath
	d.lastRegexOK = true
}

// undoRegexRegion restores the region to its pre-substitution contents by
// replaying the saved input scratch file from the last successful run.
func (d *Dispatch) undoRegexRegion() {
	if !d.lastRegexOK {
		d.LastFailure = true
		return
	}
	b := d.Set.Active()
	if !d.fail(b.ReplaceRegionFromFile(d.lastRegexInputPath)) {
		return
	}
	os.Remove(d.lastRegexInputPath)
	d.lastRegexOK = false
}
