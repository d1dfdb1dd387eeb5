// Package metrics defines the Prometheus metrics for the bot. It is the
// single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "raybot"

// CommandsTotal counts dispatched slash commands by name.
var CommandsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Total number of slash commands dispatched, by command.",
	},
	[]string{"command"},
)

// CommandErrorsTotal counts commands that ended in the generic error reply.
var CommandErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "command_errors_total",
		Help:      "Total number of slash commands that failed, by command.",
	},
	[]string{"command"},
)

// DialogsTotal counts dialog terminal states.
// Labels:
//   - command: the command that opened the dialog
//   - outcome: "resolved", "canceled", or "timeout"
var DialogsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dialogs_total",
		Help:      "Total number of interactive dialogs, by command and terminal outcome.",
	},
	[]string{"command", "outcome"},
)

// CooldownsSweptTotal counts expired cooldown entries removed by the sweeper.
var CooldownsSweptTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cooldowns_swept_total",
		Help:      "Total number of expired cooldown entries removed by the background sweep.",
	},
)
