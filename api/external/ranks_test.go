/* ranks_test.go
 * Contains unit tests for the rank name lookup
 */

package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankName_Table(t *testing.T) {
	expected := map[int]string{
		220: "Heroic",
		219: "Grandmaster",
		218: "Master",
		217: "Diamond",
		216: "Platinum",
		215: "Gold",
		214: "Silver",
		213: "Bronze",
	}

	for rank, name := range expected {
		assert.Equal(t, name, RankName(rank))
		assert.Equal(t, name, MaxRankName(rank))
	}
}

func TestRankName_OutsideTable(t *testing.T) {
	for _, rank := range []int{0, 1, 212, 221, -1, 1000} {
		assert.Equal(t, "Unranked", RankName(rank), "rank %d", rank)
		assert.Equal(t, "Unknown", MaxRankName(rank), "rank %d", rank)
	}
}
