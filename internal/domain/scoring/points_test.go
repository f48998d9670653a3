package scoring

import "testing"

func TestPoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		ph, pa, ah, aa int
		want           int
	}{
		{"exact score", 2, 1, 2, 1, 3},
		{"exact goalless draw", 0, 0, 0, 0, 3},
		{"home win right margin wrong", 1, 0, 3, 0, 1},
		{"away win right margin wrong", 0, 2, 1, 3, 1},
		{"draw right goals wrong", 0, 0, 1, 1, 1},
		{"predicted draw actual home win", 1, 1, 2, 0, 0},
		{"predicted home win actual away win", 2, 1, 1, 2, 0},
		{"predicted away win actual draw", 0, 1, 2, 2, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Points(tc.ph, tc.pa, tc.ah, tc.aa); got != tc.want {
				t.Fatalf("Points(%d,%d,%d,%d)=%d want %d", tc.ph, tc.pa, tc.ah, tc.aa, got, tc.want)
			}
		})
	}
}

func TestPointsTotality(t *testing.T) {
	t.Parallel()

	// Every pair of score pairs in a small grid must land on exactly one of
	// the three point values, and 3 must coincide with pair equality.
	for ph := 0; ph <= 4; ph++ {
		for pa := 0; pa <= 4; pa++ {
			for ah := 0; ah <= 4; ah++ {
				for aa := 0; aa <= 4; aa++ {
					got := Points(ph, pa, ah, aa)
					if got != 0 && got != 1 && got != 3 {
						t.Fatalf("Points(%d,%d,%d,%d)=%d outside {0,1,3}", ph, pa, ah, aa, got)
					}
					exact := ph == ah && pa == aa
					if exact != (got == 3) {
						t.Fatalf("Points(%d,%d,%d,%d)=%d, exact=%t", ph, pa, ah, aa, got, exact)
					}
					if !exact && got == 1 && Classify(ph, pa) != Classify(ah, aa) {
						t.Fatalf("Points(%d,%d,%d,%d)=1 with mismatched outcome classes", ph, pa, ah, aa)
					}
				}
			}
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	if Classify(3, 1) != OutcomeHomeWin {
		t.Fatal("3-1 must classify as home win")
	}
	if Classify(0, 2) != OutcomeAwayWin {
		t.Fatal("0-2 must classify as away win")
	}
	if Classify(2, 2) != OutcomeDraw {
		t.Fatal("2-2 must classify as draw")
	}
}
