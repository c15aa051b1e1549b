package view

import (
	"testing"
	"time"

	"stopwatch/internal/core/eventloop"
	"stopwatch/internal/core/model"
	"stopwatch/internal/core/reactor"
	"stopwatch/internal/core/stopwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeText struct {
	text   string
	writes int
}

func (node *fakeText) SetText(text string) {
	node.text = text
	node.writes++
}

type fakeList struct {
	items  []string
	writes int
}

func (node *fakeList) SetItems(items []string) {
	node.items = items
	node.writes++
}

type fakeDocument struct {
	texts map[string]*fakeText
	lists map[string]*fakeList
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{
		texts: map[string]*fakeText{
			ElementTime:      {},
			ElementStartStop: {},
			ElementLapReset:  {},
		},
		lists: map[string]*fakeList{
			ElementHistory: {},
		},
	}
}

func (document *fakeDocument) Text(id string) (TextNode, bool) {
	node, ok := document.texts[id]
	if !ok {
		return nil, false
	}
	return node, true
}

func (document *fakeDocument) List(id string) (ListNode, bool) {
	node, ok := document.lists[id]
	if !ok {
		return nil, false
	}
	return node, true
}

func TestMountRequiresEveryElement(t *testing.T) {
	for _, id := range []string{ElementTime, ElementStartStop, ElementLapReset, ElementHistory} {
		t.Run(id, func(t *testing.T) {
			document := newFakeDocument()
			delete(document.texts, id)
			delete(document.lists, id)

			_, err := Mount(document)
			require.ErrorIs(t, err, ErrMissingElement)
			assert.Contains(t, err.Error(), id)
		})
	}
}

func TestButtonLabels(t *testing.T) {
	primary, secondary := ButtonLabels(true)
	assert.Equal(t, "Stop", primary)
	assert.Equal(t, "Lap", secondary)

	primary, secondary = ButtonLabels(false)
	assert.Equal(t, "Start", primary)
	assert.Equal(t, "Reset", secondary)
}

func TestHistoryItems(t *testing.T) {
	assert.Equal(t, []string{PlaceholderEntry}, HistoryItems(nil))

	entries := []model.Entry{
		model.NewEntry(10 * time.Millisecond),
		model.NewEntry(61005 * time.Millisecond),
		model.NewEntry(10 * time.Millisecond),
	}
	assert.Equal(t, []string{"00:00:010", "01:01:005", "00:00:010"}, HistoryItems(entries))
}

func TestRenderHistory(t *testing.T) {
	document := newFakeDocument()
	view, err := Mount(document)
	require.NoError(t, err)
	list := document.lists[ElementHistory]

	view.RenderHistory(nil)
	assert.Equal(t, []string{PlaceholderEntry}, list.items)

	view.RenderHistory([]model.Entry{model.NewEntry(time.Second), model.NewEntry(2 * time.Second)})
	assert.Len(t, list.items, 2)
	assert.NotContains(t, list.items, PlaceholderEntry)
}

func TestBindKeepsDocumentInSync(t *testing.T) {
	clock := eventloop.NewManualClock(time.Unix(0, 0))
	loop := eventloop.New(clock, 0)
	sw := stopwatch.New(model.StopwatchConfig{TickInterval: 10 * time.Millisecond}, loop)
	t.Cleanup(sw.Timer.Stop)

	document := newFakeDocument()
	view, err := Mount(document)
	require.NoError(t, err)

	var reactions reactor.Reactor
	defer reactions.Dispose()
	Bind(&reactions, sw, view)

	timeNode := document.texts[ElementTime]
	primary := document.texts[ElementStartStop]
	secondary := document.texts[ElementLapReset]
	history := document.lists[ElementHistory]

	assert.Equal(t, "00:00:000", timeNode.text)
	assert.Equal(t, "Start", primary.text)
	assert.Equal(t, "Reset", secondary.text)
	assert.Equal(t, []string{PlaceholderEntry}, history.items)

	sw.Controller.PressPrimary()
	assert.Equal(t, "Stop", primary.text)
	assert.Equal(t, "Lap", secondary.text)
	assert.Equal(t, 1, timeNode.writes, "starting must not rewrite an unchanged time")

	clock.Tick()
	require.Eventually(t, func() bool { return loop.Pending() == 1 }, time.Second, time.Millisecond)
	loop.Drain()
	assert.Equal(t, "00:00:010", timeNode.text)
	assert.Equal(t, 2, primary.writes, "ticks must not rewrite the buttons")
	assert.Equal(t, 1, history.writes)

	sw.Controller.PressSecondary()
	assert.Equal(t, []string{"00:00:010"}, history.items)

	sw.Controller.PressPrimary()
	sw.Controller.PressSecondary()
	assert.Equal(t, []string{PlaceholderEntry}, history.items)
	assert.Equal(t, "00:00:000", timeNode.text)
	assert.Equal(t, "Start", primary.text)
}
