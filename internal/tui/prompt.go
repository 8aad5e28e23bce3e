package tui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
	"github.com/javiermolinar/twine/internal/tags"
	"github.com/javiermolinar/twine/internal/tui/input"
)

var promptCommands = []input.PromptCommand{
	{Name: "/add", Usage: "/add [type] <title>", Description: "Add a block at the cursor"},
	{Name: "/goto", Usage: "/goto <date>", Description: "Show the weeks around a date"},
	{Name: "/tag", Usage: "/tag <text|creative> <tag>", Description: "Add a tag to a vocabulary"},
	{Name: "/untag", Usage: "/untag <text|creative> <tag>", Description: "Remove a tag from a vocabulary"},
	{Name: "/seed", Usage: "/seed", Description: "Insert sample blocks into an empty board"},
	{Name: "/clear", Usage: "/clear yes", Description: "Delete every block"},
}

// handlePromptSubmit runs a submitted prompt. Plain text adds a text block.
func (m *Model) handlePromptSubmit(value string) {
	name, arg := input.Split(value)
	switch name {
	case "":
		if arg != "" {
			m.addBlock(content.TypeText, arg)
		}

	case "/add":
		t, title := content.TypeText, arg
		if fields := input.Fields(arg); len(fields) > 1 {
			if parsed, err := content.ParseType(fields[0]); err == nil {
				t, title = parsed, strings.Join(fields[1:], " ")
			}
		}
		if title == "" {
			m.err = fmt.Errorf("usage: %s", promptCommands[0].Usage)
			return
		}
		m.addBlock(t, title)

	case "/goto":
		day, err := dateutil.ParseRelativeDate(arg, m.today())
		if err != nil {
			m.err = err
			return
		}
		m.setWindow(day)
		m.cursor = Position{Day: m.dayIndex(day)}
		m.statusMsg = m.rangeLabel()

	case "/tag", "/untag":
		m.editVocabulary(name, arg)

	case "/seed":
		if n := m.deps.Store.Seed(m.today()); n > 0 {
			m.statusMsg = fmt.Sprintf("Seeded %d blocks", n)
		} else {
			m.statusMsg = "Board is not empty"
		}

	case "/clear":
		n := m.deps.Store.Count()
		if arg != "yes" {
			m.statusMsg = fmt.Sprintf("Type /clear yes to delete %d blocks", n)
			return
		}
		m.deps.Store.ClearAllBlocks()
		m.statusMsg = fmt.Sprintf("Deleted %d blocks", n)

	default:
		m.err = fmt.Errorf("unknown command %s", name)
	}
}

// addBlock creates a block in the cell under the cursor.
func (m *Model) addBlock(t content.Type, title string) {
	id := m.deps.Store.AddBlock(content.NewBlock{
		Type:     t,
		Title:    title,
		Date:     m.dateAt(m.cursor.Day),
		TimeSlot: content.TimeSlot(m.cursor.Slot),
	})
	m.focusBlock(id)
	m.statusMsg = fmt.Sprintf("Added %q", title)
}

func (m *Model) editVocabulary(name, arg string) {
	fields := input.Fields(arg)
	if len(fields) < 2 {
		m.err = fmt.Errorf("usage: %s <text|creative> <tag>", name)
		return
	}
	cat, err := tags.ParseCategory(fields[0])
	if err != nil {
		m.err = err
		return
	}
	tag := strings.Join(fields[1:], " ")
	before := len(m.deps.Tags.TagsForType(cat))
	if name == "/tag" {
		m.deps.Tags.AddTag(cat, tag)
	} else {
		m.deps.Tags.RemoveTag(cat, tag)
	}
	if len(m.deps.Tags.TagsForType(cat)) == before {
		m.statusMsg = fmt.Sprintf("No change to %s tags", cat)
		return
	}
	m.statusMsg = fmt.Sprintf("%s tags: %s", cat, strings.Join(m.deps.Tags.TagsForType(cat), ", "))
}
