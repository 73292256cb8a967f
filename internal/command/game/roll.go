package game

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/keshon/guild-clerk/internal/bot"
	"github.com/keshon/guild-clerk/internal/core"
)

var (
	tokenRegex = regexp.MustCompile(`(?i)(\d*d\d+|\d+|[+\-])`)
	diceRegex  = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)
)

// NewRoll builds the roll command.
func NewRoll(app *core.App, cat *core.Category) *core.Command {
	return &core.Command{
		Name:            "roll",
		Aliases:         []string{"dice"},
		Enabled:         true,
		Cooldown:        2 * time.Second,
		Description:     "Roll dice like `2d20+1d6-2`",
		FullDescription: "Rolls dice formulas with addition and subtraction of dice terms and constants.",
		Usage:           "<formula>",
		Run: func(ctx *core.MessageContext) error {
			if len(ctx.Args) == 0 {
				bot.MessageText(ctx.Session, ctx.Event.ChannelID, "Usage: `roll <formula>`, e.g. `roll 2d6+3`")
				return nil
			}
			formula := strings.ReplaceAll(strings.Join(ctx.Args, ""), " ", "")
			total, breakdown, err := evaluate(formula)
			if err != nil {
				bot.MessageText(ctx.Session, ctx.Event.ChannelID,
					fmt.Sprintf("Can't parse `%s`: %v. Try something like `2d6+1d4-3`.", formula, err))
				return nil
			}
			bot.MessageText(ctx.Session, ctx.Event.ChannelID,
				fmt.Sprintf("🎲 %s = **%d**", breakdown, total))
			return nil
		},
	}
}

func evaluate(formula string) (int, string, error) {
	tokens := tokenRegex.FindAllString(formula, -1)
	if len(tokens) == 0 || strings.Join(tokens, "") != formula {
		return 0, "", fmt.Errorf("unrecognized formula")
	}

	total := 0
	sign := 1
	var parts []string
	for _, token := range tokens {
		switch token {
		case "+":
			sign = 1
			continue
		case "-":
			sign = -1
			continue
		}

		value, desc, err := evaluateToken(token)
		if err != nil {
			return 0, "", err
		}
		total += sign * value
		if len(parts) > 0 {
			op := "+"
			if sign < 0 {
				op = "-"
			}
			parts = append(parts, op)
		} else if sign < 0 {
			parts = append(parts, "-")
		}
		parts = append(parts, desc)
		sign = 1
	}
	return total, strings.Join(parts, " "), nil
}

func evaluateToken(token string) (int, string, error) {
	if m := diceRegex.FindStringSubmatch(token); m != nil {
		count := 1
		if m[1] != "" {
			var err error
			if count, err = strconv.Atoi(m[1]); err != nil || count < 1 || count > 100 {
				return 0, "", fmt.Errorf("bad dice count in %q", token)
			}
		}
		sides, err := strconv.Atoi(m[2])
		if err != nil || sides < 2 || sides > 1000 {
			return 0, "", fmt.Errorf("bad die size in %q", token)
		}

		sum := 0
		rolls := make([]string, count)
		for i := 0; i < count; i++ {
			r := rand.Intn(sides) + 1
			sum += r
			rolls[i] = strconv.Itoa(r)
		}
		return sum, fmt.Sprintf("%s[%s]", token, strings.Join(rolls, ",")), nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, "", fmt.Errorf("bad term %q", token)
	}
	return n, token, nil
}
