package primitives

// Apply removes from c every word that is inconsistent with guess having received fb.
//
// The surviving set is always a subset of c, and a goal that produced fb is never removed.
func (ix *Index) Apply(c *Candidates, guess string, fb Feedback) {
	for slot, mark := range fb {
		ch := guess[slot]
		switch mark {
		case Correct:
			c.set.InPlaceIntersection(ix.Position(slot, ch))
		case Partial:
			c.set.InPlaceIntersection(ix.AtLeast(0, ch))
			c.set.InPlaceDifference(ix.Position(slot, ch))
		case Incorrect:
			// The goal holds exactly as many ch as were confirmed elsewhere in this row.
			confirmed := confirmedCount(guess, fb, ch)
			if confirmed > 0 {
				c.set.InPlaceDifference(ix.AtLeast(confirmed, ch))
				c.set.InPlaceDifference(ix.Position(slot, ch))
			} else {
				c.set.InPlaceDifference(ix.AtLeast(0, ch))
			}
		}
	}
}

func confirmedCount(guess string, fb Feedback, ch byte) int {
	count := 0
	for slot, mark := range fb {
		if guess[slot] == ch && mark != Incorrect {
			count++
		}
	}
	return count
}
