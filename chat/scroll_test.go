package chat

import "testing"

func TestNearBottomHeuristic(t *testing.T) {
	// 1000 - 550 - 400 = 50px from the bottom: no button
	if ShowScrollButton(1000, 550, 400) {
		t.Fatal("50px from bottom must not show the scroll button")
	}

	// exactly at the threshold (150px) counts as scrolled away
	if NearBottom(1000, 450, 400) {
		t.Fatal("distance == 150 must not count as near bottom")
	}
	if !ShowScrollButton(1000, 450, 400) {
		t.Fatal("distance == 150 must show the scroll button")
	}

	// one pixel closer flips it
	if !NearBottom(1000, 451, 400) {
		t.Fatal("distance == 149 must count as near bottom")
	}
}
