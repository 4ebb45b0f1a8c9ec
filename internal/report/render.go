// Package report renders scan verdicts and uniform-run results for humans
// and for machines.
//
// The core produces structured values only; all verbosity and formatting
// policy (report stride, line caps, color) lives here.
package report

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/coresift/internal/hexpattern"
	"github.com/fyrsmithlabs/coresift/internal/runs"
	"github.com/fyrsmithlabs/coresift/internal/scan"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// Options control text rendering verbosity.
type Options struct {
	// ReportEvery prints every n-th prefix line; the final prefix always
	// prints. 1 prints every prefix.
	ReportEvery int

	// MaxLines caps prefix lines per orientation; 0 means no cap. The cap
	// never hides the verdict, only intermediate prefix lines.
	MaxLines int
}

// DefaultOptions mirror the original console tooling: every prefix, capped
// at 200 lines.
func DefaultOptions() Options {
	return Options{ReportEvery: 1, MaxLines: 200}
}

// RenderVerdict writes the progressive per-prefix report for both
// orientations followed by the aggregate verdict. The secret bytes are
// passed separately: the Verdict itself never carries them, so JSON output
// and logs cannot leak what was probed.
func RenderVerdict(w io.Writer, v *scan.Verdict, secret []byte, opts Options) {
	if opts.ReportEvery < 1 {
		opts.ReportEvery = 1
	}

	fmt.Fprintf(w, "%s\n", headerStyle.Render(fmt.Sprintf(
		"Probing %s (%d bytes) in %s (%d bytes)",
		hexpattern.TypeLabel(v.SecretLen), v.SecretLen, v.CorpusPath, v.CorpusSize)))
	fmt.Fprintln(w)

	renderReport(w, &v.Forward, secret, opts)
	rev := make([]byte, len(secret))
	for i, b := range secret {
		rev[len(secret)-1-i] = b
	}
	renderReport(w, &v.Reversed, rev, opts)

	if v.Leaked {
		fmt.Fprintln(w, alertStyle.Render("[!] TRACE DETECTED"))
		if v.Forward.Leaked {
			fmt.Fprintln(w, alertStyle.Render(fmt.Sprintf("[!] full %d-byte value present (forward byte order)", v.SecretLen)))
		}
		if v.Reversed.Leaked {
			fmt.Fprintln(w, alertStyle.Render(fmt.Sprintf("[!] full %d-byte value present (reversed byte order)", v.SecretLen)))
		}
	} else {
		fmt.Fprintln(w, okStyle.Render("[+] no full value found in corpus (value protected)"))
	}
}

func renderReport(w io.Writer, r *scan.ScanReport, oriented []byte, opts Options) {
	fmt.Fprintf(w, "[*] %s: %s\n", r.Orientation, hex.EncodeToString(oriented))
	if r.Skipped {
		fmt.Fprintf(w, "    %s\n\n", dimStyle.Render("skipped: identical to forward byte order"))
		return
	}

	n := len(r.Counts)
	lines := 0
	var prev uint64
	havePrev := false
	for k := 1; k <= n; k++ {
		c := r.Counts.At(k)
		show := k%opts.ReportEvery == 0 || k == n
		if show && (opts.MaxLines == 0 || lines < opts.MaxLines || k == n) {
			fmt.Fprintf(w, "  [%02d/%d] prefix=%s  occurrences=%d\n",
				k, n, hex.EncodeToString(oriented[:k]), c)
			lines++
			if opts.MaxLines != 0 && lines == opts.MaxLines && k != n {
				fmt.Fprintf(w, "  %s\n", dimStyle.Render(fmt.Sprintf(
					"(capped at %d lines; raise --max-lines or --report-every to see more)", opts.MaxLines)))
			}
		}
		if havePrev && prev != 0 && c == 0 {
			fmt.Fprintf(w, "      %s\n", noteStyle.Render(fmt.Sprintf(
				"-> dropped to 0 at prefix length %d (%d bits)", k, k*8)))
		}
		prev = c
		havePrev = true
	}

	fmt.Fprintf(w, "    boundary: depth=%d state=%s\n\n", r.Boundary.Depth, r.Boundary.State)
}

// RenderRuns writes the uniform-run block report, grouped per probed value
// in the order the values were given.
func RenderRuns(w io.Writer, found []runs.Run, values []byte, minLength uint64) {
	for _, v := range values {
		var blocks []runs.Run
		var total uint64
		for _, r := range found {
			if r.Value == v {
				blocks = append(blocks, r)
				total += r.Length
			}
		}

		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Pattern: 0x%02X", v)))
		fmt.Fprintf(w, "Total blocks found: %d\n", len(blocks))
		if len(blocks) == 0 {
			fmt.Fprintln(w)
			continue
		}

		fmt.Fprintf(w, "Total bytes: %d\n", total)
		fmt.Fprintln(w, "Block details:")
		for i, b := range blocks {
			fmt.Fprintf(w, "  Block %d: offset=0x%08x, size=%4d bytes\n", i+1, b.Offset, b.Length)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%s\n", dimStyle.Render(fmt.Sprintf("minimum run length: %d bytes", minLength)))
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
