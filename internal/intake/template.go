package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/tizhi/internal/bank"
)

// Template returns a document with every question of the effective bank
// for sex left unanswered.
func Template(sex bank.Sex) Document {
	b := bank.Effective(sex)
	doc := Document{
		Sex:     sex.String(),
		Answers: make(map[string][]*int, bank.CategoryCount),
	}
	for _, c := range bank.AllCategories() {
		doc.Answers[c.String()] = make([]*int, b.Count(c))
	}
	return doc
}

// answerKeys orders the document's keys by catalog order. Unrecognised
// keys follow in lexical order.
func (d Document) answerKeys() []string {
	keys := make([]string, 0, len(d.Answers))
	for k := range d.Answers {
		keys = append(keys, k)
	}
	rank := func(k string) int {
		if c, err := bank.ParseCategory(k); err == nil {
			return int(c)
		}
		return bank.CategoryCount
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// WriteJSON writes d with one category per line in catalog order.
func (d Document) WriteJSON(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString("{\n")
	if d.Sex != "" {
		sex, err := json.Marshal(d.Sex)
		if err != nil {
			return fmt.Errorf("encode sex: %w", err)
		}
		fmt.Fprintf(&b, "  \"sex\": %s,\n", sex)
	}
	b.WriteString("  \"answers\": {")
	keys := d.answerKeys()
	for i, k := range keys {
		key, err := json.Marshal(k)
		if err != nil {
			return fmt.Errorf("encode key %q: %w", k, err)
		}
		cells := d.Answers[k]
		if cells == nil {
			cells = []*int{}
		}
		vals, err := json.Marshal(cells)
		if err != nil {
			return fmt.Errorf("encode answers for %q: %w", k, err)
		}
		sep := ","
		if i == len(keys)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "\n    %s: %s%s", key, vals, sep)
	}
	if len(keys) > 0 {
		b.WriteString("\n  ")
	}
	b.WriteString("}\n}\n")
	_, err := w.Write(b.Bytes())
	return err
}

// WriteYAML writes d as YAML with flow-style answer lists in catalog order.
func (d Document) WriteYAML(w io.Writer) error {
	scalar := func(tag, v string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v}
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	if d.Sex != "" {
		root.Content = append(root.Content, scalar("!!str", "sex"), scalar("!!str", d.Sex))
	}
	answers := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range d.answerKeys() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range d.Answers[k] {
			if v == nil {
				seq.Content = append(seq.Content, scalar("!!null", "null"))
				continue
			}
			seq.Content = append(seq.Content, scalar("!!int", strconv.Itoa(*v)))
		}
		answers.Content = append(answers.Content, scalar("!!str", k), seq)
	}
	root.Content = append(root.Content, scalar("!!str", "answers"), answers)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
