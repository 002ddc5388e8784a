package worker

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestReadGames(t *testing.T) {
	input := `# opening lines
e2e4 e7e5

  d2d4   d7d5
# end
g1f3`

	items, err := ReadGames(strings.NewReader(input), "games.txt", 10)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(items), 3)

	testutil.AssertEqual(t, items[0].Index, 10)
	testutil.AssertEqual(t, items[0].Source, "games.txt:2")
	testutil.AssertEqual(t, items[0].Moves, []string{"e2e4", "e7e5"})

	testutil.AssertEqual(t, items[1].Index, 11)
	testutil.AssertEqual(t, items[1].Source, "games.txt:4")
	testutil.AssertEqual(t, items[1].Moves, []string{"d2d4", "d7d5"})

	testutil.AssertEqual(t, items[2].Source, "games.txt:6")
}

func TestReadGames_Empty(t *testing.T) {
	items, err := ReadGames(strings.NewReader("\n\n# nothing\n"), "stdin", 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(items), 0)
}
