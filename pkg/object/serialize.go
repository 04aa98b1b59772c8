package object

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Blob
// ---------------------------------------------------------------------------

// MarshalBlob serializes a Blob to raw bytes (identity).
func MarshalBlob(b *Blob) []byte {
	out := make([]byte, len(b.Data))
	copy(out, b.Data)
	return out
}

// UnmarshalBlob deserializes raw bytes into a Blob.
func UnmarshalBlob(payload []byte) (*Blob, error) {
	out := make([]byte, len(payload))
	copy(out, payload)
	return &Blob{Data: out}, nil
}

// ---------------------------------------------------------------------------
// Tree
// ---------------------------------------------------------------------------

// MarshalTree serializes a Tree. Each entry is one line:
//
//	path<TAB>blobhash
//
// Entries are written in their stored order, so an identical staged
// mapping always produces an identical payload (and digest).
func MarshalTree(t *Tree) []byte {
	var buf bytes.Buffer
	for _, e := range t.Entries {
		fmt.Fprintf(&buf, "%s\t%s\n", e.Path, string(e.BlobHash))
	}
	return buf.Bytes()
}

// UnmarshalTree parses a Tree from its serialized form. Blank lines are
// skipped; a line without a tab is a malformed entry.
func UnmarshalTree(payload []byte) (*Tree, error) {
	t := &Tree{}
	text := strings.TrimRight(string(payload), "\n")
	if text == "" {
		return t, nil
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		path, hash, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("unmarshal tree: malformed entry %q", line)
		}
		t.Entries = append(t.Entries, TreeEntry{Path: path, BlobHash: Hash(hash)})
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Commit
// ---------------------------------------------------------------------------

// MarshalCommit serializes a Commit:
//
//	tree H
//	parent H     (omitted for a root commit)
//	author A T   (T is RFC 3339 UTC)
//
//	message
func MarshalCommit(c *Commit) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", string(c.TreeHash))
	if c.Parent != "" {
		fmt.Fprintf(&buf, "parent %s\n", string(c.Parent))
	}
	fmt.Fprintf(&buf, "author %s %s\n", c.Author, c.Timestamp.UTC().Format(time.RFC3339))
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	buf.WriteByte('\n')
	return buf.Bytes()
}

// UnmarshalCommit parses a Commit from its serialized form.
func UnmarshalCommit(payload []byte) (*Commit, error) {
	idx := bytes.Index(payload, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("unmarshal commit: missing header/message separator")
	}
	header := string(payload[:idx])
	message := strings.TrimSuffix(string(payload[idx+2:]), "\n")

	c := &Commit{Message: message}
	for _, line := range strings.Split(header, "\n") {
		key, val, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("unmarshal commit: malformed header line %q", line)
		}
		switch key {
		case "tree":
			c.TreeHash = Hash(val)
		case "parent":
			c.Parent = Hash(val)
		case "author":
			// The timestamp is the last field; everything before it is
			// the author, which may itself contain spaces.
			cut := strings.LastIndexByte(val, ' ')
			if cut < 0 {
				return nil, fmt.Errorf("unmarshal commit: malformed author line %q", line)
			}
			c.Author = val[:cut]
			ts, err := time.Parse(time.RFC3339, val[cut+1:])
			if err != nil {
				return nil, fmt.Errorf("unmarshal commit: bad timestamp %q: %w", val[cut+1:], err)
			}
			c.Timestamp = ts
		default:
			return nil, fmt.Errorf("unmarshal commit: unknown header key %q", key)
		}
	}
	return c, nil
}
