package live

import (
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"github.com/averyk/go-web-tutorial/internal/models"
)

// TopicChart is the stream the dashboard page subscribes to.
// A single well-known topic is enough here; a bigger app would use one topic
// per resource (per round, per room, per document...).
const TopicChart = "chart"

// RunSampler periodically builds a fresh chart payload and broadcasts it to
// everyone watching the chart topic. Start it in a goroutine next to hub.Run().
//
// This stands in for the real thing: in production the broadcast would fire
// when a data pipeline lands new numbers, not on a timer. The timer just gives
// the tutorial something visibly live to stream.
func RunSampler(hub *Hub, interval time.Duration) {
	// time.Tick returns a channel that delivers the current time every interval.
	// Ranging over it turns this function into an endless loop that wakes up
	// once per tick — the idiomatic shape for a periodic background worker.
	for range time.Tick(interval) {
		data, err := json.Marshal(nextSample())
		if err != nil {
			// Marshalling a struct of strings and ints can't really fail, but an
			// error return should never be silently discarded.
			log.Printf("sampler: marshal failed: %v", err)
			continue
		}
		hub.Broadcast(TopicChart, data)
	}
}

// nextSample starts from the canned chart payload and jitters each value a
// little, so the live dashboard visibly changes from tick to tick.
func nextSample() models.ChartData {
	sample := models.SampleChartData()
	for i, v := range sample.Values {
		// rand.Intn(11) - 5 yields a random step in [-5, +5]
		v += rand.Intn(11) - 5
		if v < 0 {
			v = 0
		}
		sample.Values[i] = v
	}
	return sample
}
