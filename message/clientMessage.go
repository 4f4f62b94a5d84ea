////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package message

import (
	"strconv"
	"time"

	"gitlab.com/xx_network/primitives/netTime"
)

// Kind tags a locally synthesized message with the rendering style it should
// get. It carries no content semantics.
type Kind uint32

const (
	// Informative is a neutral client notice.
	Informative Kind = 0

	// Error is a client-side failure notice.
	Error Kind = 1

	// DateTransition marks a day boundary in the message list.
	DateTransition Kind = 2

	// NewMessagesTransition marks the first unread message in the list.
	NewMessagesTransition Kind = 3
)

// String returns a human-readable version of [Kind], used for debugging and
// logging. This function adheres to the [fmt.Stringer] interface.
func (k Kind) String() string {
	switch k {
	case Informative:
		return "Informative"
	case Error:
		return "Error"
	case DateTransition:
		return "DateTransition"
	case NewMessagesTransition:
		return "NewMessagesTransition"
	default:
		return "Unknown Kind " + strconv.Itoa(int(k))
	}
}

// ClientMessage is a message the client synthesizes locally. It is not tied
// to any server post and never leaves the client.
type ClientMessage struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Kind      Kind      `json:"kind"`
}

// NewClientMessage synthesizes a message of the given kind stamped with the
// local clock.
func NewClientMessage(kind Kind, text string) ClientMessage {
	return ClientMessage{
		Text:      text,
		CreatedAt: netTime.Now(),
		Kind:      kind,
	}
}
