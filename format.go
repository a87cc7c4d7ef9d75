package selectable

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/albertocavalcante/go-selectable/pool"
	"github.com/albertocavalcante/go-selectable/status"
)

// ObjectSummary describes one object of a Selectable.
type ObjectSummary struct {
	ID         int    `json:"id" yaml:"id"`
	Edition    string `json:"edition" yaml:"edition"`
	Arch       string `json:"arch" yaml:"arch"`
	Vendor     string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Repository string `json:"repository" yaml:"repository"`
	Transact   string `json:"transact,omitempty" yaml:"transact,omitempty"`
	Locked     bool   `json:"locked,omitempty" yaml:"locked,omitempty"`
}

// Summary is a serializable view of a Selectable.
type Summary struct {
	Ident        string          `json:"ident" yaml:"ident"`
	Kind         string          `json:"kind" yaml:"kind"`
	Status       status.Status   `json:"status" yaml:"status"`
	Fate         string          `json:"fate" yaml:"fate"`
	ModifiedBy   pool.Causer     `json:"modified_by" yaml:"modified_by"`
	OnSystem     bool            `json:"on_system" yaml:"on_system"`
	Installed    *ObjectSummary  `json:"installed,omitempty" yaml:"installed,omitempty"`
	Candidate    *ObjectSummary  `json:"candidate,omitempty" yaml:"candidate,omitempty"`
	Update       *ObjectSummary  `json:"update,omitempty" yaml:"update,omitempty"`
	InstalledAll []ObjectSummary `json:"installed_all,omitempty" yaml:"installed_all,omitempty"`
	AvailableAll []ObjectSummary `json:"available_all,omitempty" yaml:"available_all,omitempty"`
}

func summarizeObject(it pool.Item) ObjectSummary {
	o := ObjectSummary{
		ID:         it.ID(),
		Edition:    it.Edition().String(),
		Arch:       it.Arch().String(),
		Vendor:     it.Vendor(),
		Repository: it.Repository().Name(),
		Locked:     it.Status().Locked(),
	}
	if it.Status().Transacts() {
		o.Transact = it.Status().Transact().String()
	}
	return o
}

func optionalObject(it pool.Item) *ObjectSummary {
	if it.IsZero() {
		return nil
	}
	o := summarizeObject(it)
	return &o
}

// Summarize returns a serializable view of s.
func Summarize(s *Selectable) Summary {
	sum := Summary{
		Ident:      s.Ident().String(),
		Kind:       s.Kind().String(),
		Status:     s.Status(),
		Fate:       s.Fate().String(),
		ModifiedBy: s.ModifiedBy(),
		OnSystem:   s.OnSystem(),
		Installed:  optionalObject(s.InstalledObj()),
		Candidate:  optionalObject(s.CandidateObj()),
		Update:     optionalObject(s.UpdateCandidateObj()),
	}
	for it := range s.Installed() {
		sum.InstalledAll = append(sum.InstalledAll, summarizeObject(it))
	}
	for it := range s.Available() {
		sum.AvailableAll = append(sum.AvailableAll, summarizeObject(it))
	}
	return sum
}

// ToJSON outputs the summaries of all Selectables of px.
func ToJSON(px *Proxy) ([]byte, error) {
	var all []Summary
	for s := range px.All() {
		all = append(all, Summarize(s))
	}
	return json.MarshalIndent(all, "", "  ")
}

// String returns a one-line description of s:
//
//	i  amarok (I 1) 2.4-1.x86_64 (A 2) 2.5-1.x86_64
func String(s *Selectable) string {
	return fmt.Sprintf("%s %s (I %d) %s (A %d) %s",
		s.Status().Code(),
		s.Ident(),
		s.InstalledSize(), objectLabel(s.InstalledObj()),
		s.AvailableSize(), objectLabel(s.CandidateObj()))
}

func objectLabel(it pool.Item) string {
	if it.IsZero() {
		return "-"
	}
	return it.Edition().String() + "." + it.Arch().String()
}

// Dump writes a verbose multi-line description of s to w: the one-line
// form, then every installed and available object with markers for the
// installed representative (I), the candidate (C), transactions and locks.
func Dump(w io.Writer, s *Selectable) error {
	var b strings.Builder
	b.WriteString(String(s))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  fate: %s by %s\n", s.Fate(), s.ModifiedBy())

	inst, cand := s.InstalledObj(), s.CandidateObj()
	b.WriteString("  installed:\n")
	for it := range s.Installed() {
		writeObjectLine(&b, it, it == inst, "I")
	}
	b.WriteString("  available:\n")
	for it := range s.Available() {
		writeObjectLine(&b, it, it == cand, "C")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeObjectLine(b *strings.Builder, it pool.Item, selected bool, mark string) {
	marker := " "
	if selected {
		marker = mark
	}
	flags := ""
	if it.Status().Transacts() {
		flags += " [" + it.Status().Transact().String() + "]"
	}
	if it.Status().Locked() {
		flags += " [locked]"
	}
	fmt.Fprintf(b, "    %s %s%s\n", marker, it, flags)
}
