// Package offers generates the randomized job and crime proposals shown by
// the economy commands and resolves their monetary and experience effects.
package offers

import (
	"math/rand"
	"strings"
	"time"
)

// Flavor templates. The description placeholder is substituted with one of
// the position nouns below.
var jobTemplates = [][2]string{
	{"Discord Server", "What more could you ask for than being the server's resident %position%?"},
	{"BudWorks", "We at BudWorks would love for you to join us as our personal %position%. We do not offer benefits."},
	{"Video Game", "Videos game? %position%? Sounds like the perfect combo! Breaks are not allowed."},
	{"Door to Door", "Sometimes the best way to offer %position% services is by knocking on doors and not leaving people alone until they pay."},
	{"Movie", "Every good movie needs a good %position%, otherwise what's the point of watching the movie at all?"},
	{"Fast Food", "Being the %position% for a fast food place is hard work, and doesn't pay well at all! You'll probably take it anyways though."},
	{"Piggly Wiggly", "If you want a well-paid %position% position at Piggly Wiggly, don't hold your breath! It may not have amazing rates but rest assured, this place is to die for!"},
	{"Real Estate", "Real estate may sound boring, but it is! Being a useful %position% might make it better though."},
	{"Clowny the", "You can take the %position% role under one condition: You will always be referred to as Clowny."},
	{"Mall", "Who cares if malls are all but dead these days? That just means they're always on the lookout for more %position% workers!"},
	{"FBI", "We can't talk about this job publicly."},
	{"Self-taught", "What better way to enter the %position% industry than doing it entirely on your own!"},
}

var positions = []string{
	"Moderator",
	"Investor",
	"Spy",
	"Salesman",
	"Clown",
	"Artist",
	"Intern",
	"Doctor",
	"Robot",
	"Cop",
	"Mascot",
	"Cowboy",
	"Professor",
}

// Offer is an ephemeral job or crime proposal. It lives for one command
// invocation and is never persisted.
type Offer struct {
	Title         string
	Description   string
	BasePay       int
	Pay           int
	CooldownHours int
	ExpReward     int
	Risky         bool
	// OutcomeDraw decides success when the offer is resolved. Non-risky
	// offers fix it at 1 so the failure branch can never be taken.
	OutcomeDraw float64
}

// NewJob builds a safe offer: the pay is drawn from [minPay, maxPay] and the
// outcome always succeeds.
func NewJob(minPay, maxPay, cooldownHours int) Offer {
	template := jobTemplates[rand.Intn(len(jobTemplates))]
	position := positions[rand.Intn(len(positions))]

	return Offer{
		Title:         template[0] + " " + position,
		Description:   strings.ReplaceAll(template[1], "%position%", position),
		BasePay:       minPay,
		Pay:           rand.Intn(maxPay-minPay+1) + minPay,
		CooldownHours: cooldownHours,
		ExpReward:     rand.Intn(101) + 100,
		OutcomeDraw:   1,
	}
}

// NewCrime builds a risky offer whose outcome is decided against the actor's
// success chance at resolution time.
func NewCrime(minPay, maxPay, cooldownHours int) Offer {
	o := NewJob(minPay, maxPay, cooldownHours)
	o.Risky = true
	o.OutcomeDraw = rand.Float64()
	return o
}

// CooldownDuration is how long the actor must wait before the command can be
// used again.
func (o Offer) CooldownDuration() time.Duration {
	return time.Duration(o.CooldownHours) * time.Hour
}
