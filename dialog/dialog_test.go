package dialog

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func componentClick(messageID, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionMessageComponent,
			Message: &discordgo.Message{ID: messageID},
			User:    &discordgo.User{ID: userID},
		},
	}
}

func TestOpenRejectsSecondDialogOfSameKind(t *testing.T) {
	table := NewTable()

	d, err := table.Open("u1", "work")
	require.NoError(t, err)
	defer d.Close()

	_, err = table.Open("u1", "work")
	assert.ErrorIs(t, err, ErrBusy)
}

func TestOpenAllowsDifferentKindsAndUsers(t *testing.T) {
	table := NewTable()

	d1, err := table.Open("u1", "work")
	require.NoError(t, err)
	defer d1.Close()

	d2, err := table.Open("u1", "crime")
	require.NoError(t, err)
	defer d2.Close()

	d3, err := table.Open("u2", "work")
	require.NoError(t, err)
	defer d3.Close()
}

func TestCloseReleasesTheLock(t *testing.T) {
	table := NewTable()

	d, err := table.Open("u1", "work")
	require.NoError(t, err)
	d.Close()

	d2, err := table.Open("u1", "work")
	require.NoError(t, err)
	d2.Close()
}

func TestCloseIsIdempotent(t *testing.T) {
	table := NewTable()

	d, err := table.Open("u1", "work")
	require.NoError(t, err)

	d.Close()
	d.Close()
	d.Close()
}

func TestDeliverRoutesToBoundMessage(t *testing.T) {
	table := NewTable()

	d, err := table.Open("u1", "work")
	require.NoError(t, err)
	defer d.Close()
	d.Bind("m1")

	assert.True(t, table.Deliver(componentClick("m1", "u1")))

	got, ok := d.Await()
	require.True(t, ok)
	assert.Equal(t, "m1", got.Message.ID)
}

func TestDeliverDropsOtherUsers(t *testing.T) {
	table := NewTable()

	d, err := table.Open("u1", "work")
	require.NoError(t, err)
	defer d.Close()
	d.Bind("m1")

	assert.False(t, table.Deliver(componentClick("m1", "u2")))
}

func TestDeliverDropsUnboundMessages(t *testing.T) {
	table := NewTable()

	d, err := table.Open("u1", "work")
	require.NoError(t, err)
	defer d.Close()
	d.Bind("m1")

	assert.False(t, table.Deliver(componentClick("m2", "u1")))
}

func TestDeliverDropsRacingSecondClick(t *testing.T) {
	table := NewTable()

	d, err := table.Open("u1", "work")
	require.NoError(t, err)
	defer d.Close()
	d.Bind("m1")

	assert.True(t, table.Deliver(componentClick("m1", "u1")))
	assert.False(t, table.Deliver(componentClick("m1", "u1")))
}

func TestAwaitReturnsFalseAfterClose(t *testing.T) {
	table := NewTable()

	d, err := table.Open("u1", "work")
	require.NoError(t, err)
	d.Close()

	_, ok := d.Await()
	assert.False(t, ok)
}

func TestMemberUserAlsoQualifies(t *testing.T) {
	table := NewTable()

	d, err := table.Open("u1", "work")
	require.NoError(t, err)
	defer d.Close()
	d.Bind("m1")

	click := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionMessageComponent,
			Message: &discordgo.Message{ID: "m1"},
			Member:  &discordgo.Member{User: &discordgo.User{ID: "u1"}},
		},
	}
	assert.True(t, table.Deliver(click))
}
