package memory

import (
	"testing"

	"github.com/dshills/quill/internal/host"
)

func TestNewDocumentNormalizesLineEndings(t *testing.T) {
	doc := NewDocument("a\r\nb\rc")
	if got := doc.DocumentText(); got != "a\nb\nc" {
		t.Errorf("DocumentText() = %q, want %q", got, "a\nb\nc")
	}

	keep := NewDocument("a\r\nb", WithLineEnding(LineEndingKeep))
	if got := keep.DocumentText(); got != "a\r\nb" {
		t.Errorf("DocumentText() = %q, want %q", got, "a\r\nb")
	}
}

func TestSetSelectedRangeClamps(t *testing.T) {
	doc := NewDocument("hello")
	tests := []struct {
		offset, length int
		want           host.Range
	}{
		{1, 3, host.NewRange(1, 3)},
		{3, 10, host.NewRange(3, 2)},
		{-2, 4, host.NewRange(0, 2)},
		{9, 0, host.NewRange(5, 0)},
		{2, -1, host.NewRange(2, 0)},
	}
	for _, tc := range tests {
		doc.SetSelectedRange(tc.offset, tc.length)
		if got := doc.SelectedRange(); got != tc.want {
			t.Errorf("SetSelectedRange(%d, %d) -> %v, want %v", tc.offset, tc.length, got, tc.want)
		}
	}
}

func TestTextInRangeUsesCharacterOffsets(t *testing.T) {
	doc := NewDocument("héllo wörld")
	if got := doc.TextInRange(6, 5); got != "wörld" {
		t.Errorf("TextInRange(6, 5) = %q, want %q", got, "wörld")
	}
	if got := doc.Len(); got != 11 {
		t.Errorf("Len() = %d, want 11", got)
	}
}

func TestSetSelectedTextSelectsInsertion(t *testing.T) {
	doc := NewDocument("Hello, World!")
	doc.SetSelectedRange(7, 5)
	doc.SetSelectedText("Gopher")

	if got := doc.DocumentText(); got != "Hello, Gopher!" {
		t.Errorf("DocumentText() = %q", got)
	}
	if got := doc.SelectedRange(); got != host.NewRange(7, 6) {
		t.Errorf("SelectedRange() = %v, want [7+6)", got)
	}
	if doc.Revision() != 1 {
		t.Errorf("Revision() = %d, want 1", doc.Revision())
	}
}

func TestSetTextInRangeMovesSelection(t *testing.T) {
	tests := []struct {
		name      string
		sel       host.Range
		offset    int
		length    int
		text      string
		wantText  string
		wantRange host.Range
	}{
		{"edit before", host.NewRange(6, 2), 0, 1, "XYZ", "XYZbcdefghij", host.NewRange(8, 2)},
		{"edit after", host.NewRange(1, 2), 5, 2, "", "abcdehij", host.NewRange(1, 2)},
		{"insert at caret", host.NewRange(3, 0), 3, 0, "--", "abc--defghij", host.NewRange(5, 0)},
		{"edit inside selection", host.NewRange(2, 6), 4, 1, "EE", "abcdEEfghij", host.NewRange(2, 7)},
		{"edit spans selection start", host.NewRange(4, 4), 2, 4, "", "abghij", host.NewRange(2, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := NewDocument("abcdefghij")
			doc.SetSelectedRange(tc.sel.Start, tc.sel.Length)
			doc.SetTextInRange(tc.offset, tc.length, tc.text)
			if got := doc.DocumentText(); got != tc.wantText {
				t.Errorf("DocumentText() = %q, want %q", got, tc.wantText)
			}
			if got := doc.SelectedRange(); got != tc.wantRange {
				t.Errorf("SelectedRange() = %v, want %v", got, tc.wantRange)
			}
		})
	}
}

func TestLineRangeAtSelection(t *testing.T) {
	const text = "one\ntwo\nthree"
	tests := []struct {
		name string
		sel  host.Range
		want host.Range
	}{
		{"caret first line", host.NewRange(1, 0), host.NewRange(0, 4)},
		{"caret at line start", host.NewRange(4, 0), host.NewRange(4, 4)},
		{"caret on newline", host.NewRange(3, 0), host.NewRange(0, 4)},
		{"final line", host.NewRange(10, 0), host.NewRange(8, 5)},
		{"end of document", host.NewRange(13, 0), host.NewRange(8, 5)},
		{"selection over two lines", host.NewRange(1, 5), host.NewRange(0, 8)},
		{"selection ending with newline", host.NewRange(0, 4), host.NewRange(0, 4)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := NewDocument(text)
			doc.SetSelectedRange(tc.sel.Start, tc.sel.Length)
			if got := doc.LineRangeAtSelection(); got != tc.want {
				t.Errorf("LineRangeAtSelection() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLineRangeAtSelectionEmptyDocument(t *testing.T) {
	doc := NewDocument("")
	if got := doc.LineRangeAtSelection(); got != host.NewRange(0, 0) {
		t.Errorf("LineRangeAtSelection() = %v, want [0+0)", got)
	}
}

func TestSetDocumentTextResetsSelection(t *testing.T) {
	doc := NewDocument("abc")
	doc.SetSelectedRange(1, 2)
	doc.SetDocumentText("x\r\ny")
	if got := doc.DocumentText(); got != "x\ny" {
		t.Errorf("DocumentText() = %q", got)
	}
	if got := doc.SelectedRange(); got != host.NewRange(0, 0) {
		t.Errorf("SelectedRange() = %v", got)
	}
}

func TestDictation(t *testing.T) {
	d := NewDictation("first", "")
	if text, ok := d.Dictate(); !ok || text != "first" {
		t.Errorf("Dictate() = %q, %v", text, ok)
	}
	if _, ok := d.Dictate(); ok {
		t.Error("empty utterance should report not ok")
	}
	if _, ok := d.Dictate(); ok {
		t.Error("exhausted queue should report not ok")
	}
	d.Activate()
	if d.Activations() != 1 {
		t.Errorf("Activations() = %d", d.Activations())
	}
}

func TestTags(t *testing.T) {
	tags := NewTags("zeta", "alpha", "zeta", "")
	got := tags.QueryAllTags()
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("QueryAllTags() = %v", got)
	}
}
