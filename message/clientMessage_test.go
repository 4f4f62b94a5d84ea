////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package message

import (
	"testing"
	"time"
)

// Consistency test of Kind.String.
func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		Informative:           "Informative",
		Error:                 "Error",
		DateTransition:        "DateTransition",
		NewMessagesTransition: "NewMessagesTransition",
		Kind(32):              "Unknown Kind 32",
	}

	for k, expected := range tests {
		if k.String() != expected {
			t.Errorf("Incorrect string for Kind %d."+
				"\nexpected: %s\nreceived: %s", k, expected, k.String())
		}
	}
}

// Tests that NewClientMessage stamps the message with the given kind, text,
// and a current timestamp.
func TestNewClientMessage(t *testing.T) {
	cm := NewClientMessage(Error, "connection lost")

	if cm.Kind != Error {
		t.Errorf("Incorrect kind.\nexpected: %s\nreceived: %s", Error, cm.Kind)
	}
	if cm.Text != "connection lost" {
		t.Errorf("Incorrect text.\nexpected: %q\nreceived: %q",
			"connection lost", cm.Text)
	}
	if cm.CreatedAt.IsZero() || time.Since(cm.CreatedAt) > time.Minute {
		t.Errorf("Timestamp is not current: %s", cm.CreatedAt)
	}
}
