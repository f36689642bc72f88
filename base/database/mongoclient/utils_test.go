package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-oracle/refapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type patchableFeed struct {
		Symbol      string  `bson:"symbol"`
		Price       *string `bson:"price,omitempty"`
		ResolveTime *int64  `bson:"resolveTime,omitempty"`
		RequestId   *uint64 `bson:"requestId,omitempty"`
	}

	patchable := &patchableFeed{
		Symbol: "BTC",
		Price:  ptr.String("23131270000000000000000"),
		// requestId of zero must survive the omitempty check via pointer
		RequestId: ptr.Uint64(0),
	}

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"symbol":    "BTC",
			"price":     "23131270000000000000000",
			"requestId": uint64(0),
			// resolveTime pointer is nil, so it is skipped
		},
		updater,
	)
}
