// Package command turns one raw chat line into a structured intent.
package command

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindMenu
	KindOrder
	KindStatus
)

// Pair is one requested (item token, quantity) from an order command.
type Pair struct {
	Token string
	Qty   int
}

// Command is the parsed intent of an inbound message.
type Command struct {
	Kind        Kind
	ShopContact string // menu, order
	Pairs       []Pair // order
	OrderRef    string // status: order number or internal id
}

// Parse splits text on any whitespace and interprets the first token
// as the command word, case-insensitively. Anything that is not a
// well-formed menu/order/status command comes back as KindUnknown.
//
// Order tokens are consumed two at a time; a trailing token with no
// quantity means one. Quantity is lenient: non-numeric or non-positive
// input coerces to 1 rather than failing the command. Item identity is
// not lenient; unresolvable tokens are rejected downstream.
func Parse(text string) Command {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return Command{Kind: KindUnknown}
	}

	switch strings.ToLower(parts[0]) {
	case "menu":
		if len(parts) < 2 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindMenu, ShopContact: parts[1]}

	case "order":
		if len(parts) < 3 {
			return Command{Kind: KindUnknown}
		}
		rest := parts[2:]
		pairs := make([]Pair, 0, (len(rest)+1)/2)
		for i := 0; i < len(rest); i += 2 {
			qty := 1
			if i+1 < len(rest) {
				qty = parseQty(rest[i+1])
			}
			pairs = append(pairs, Pair{Token: strings.TrimSpace(rest[i]), Qty: qty})
		}
		return Command{Kind: KindOrder, ShopContact: parts[1], Pairs: pairs}

	case "status":
		if len(parts) < 2 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindStatus, OrderRef: parts[1]}
	}

	return Command{Kind: KindUnknown}
}

func parseQty(token string) int {
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// HelpText enumerates the supported command shapes; it is the reply to
// any unrecognized message.
func HelpText() string {
	return "Welcome. Commands:\n" +
		"1) menu <shopPhone>\n" +
		"2) order <shopPhone> <letter|itemCode> <qty> [more pairs]\n" +
		"3) status <orderNumber>"
}
