package service_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/okian/explorer/internal/adapters/nbaapi"
	"github.com/okian/explorer/internal/adapters/pokeapi"
	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/pkg/logger"
)

// upstreamStub serves canned JSON by path and counts requests.
type upstreamStub struct {
	*httptest.Server
	mu     sync.Mutex
	bodies map[string]string
	status map[string]int
	hits   map[string]int
}

func newStub() *upstreamStub {
	s := &upstreamStub{bodies: map[string]string{}, status: map[string]int{}, hits: map[string]int{}}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		body, ok := s.bodies[r.URL.Path]
		code := s.status[r.URL.Path]
		s.mu.Unlock()
		switch {
		case code != 0:
			w.WriteHeader(code)
		case !ok:
			http.NotFound(w, r)
		default:
			_, _ = w.Write([]byte(body))
		}
	}))
	return s
}

func (s *upstreamStub) set(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[path] = body
}

func (s *upstreamStub) fail(path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[path] = code
}

func (s *upstreamStub) count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *upstreamStub) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.hits {
		n += v
	}
	return n
}

func statsJSON(values [6]int) string {
	names := []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf(`{"base_stat":%d,"stat":{"name":%q}}`, v, names[i])
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (s *upstreamStub) species(id int, name string, chain int, stats [6]int) {
	s.set("/pokemon/"+name, fmt.Sprintf(`{"id":%d,"name":%q,"height":7,"weight":69,
		"types":[{"slot":1,"type":{"name":"grass"}}],
		"moves":[{"move":{"name":"razor-wind"}},{"move":{"name":"swords-dance"}},{"move":{"name":"cut"}},
		         {"move":{"name":"bind"}},{"move":{"name":"vine-whip"}},{"move":{"name":"headbutt"}}],
		"stats":%s}`, id, name, statsJSON(stats)))
	s.set("/pokemon-species/"+name, fmt.Sprintf(
		`{"id":%d,"name":%q,"evolution_chain":{"url":"%s/evolution-chain/%d/"}}`, id, name, s.URL, chain))
}

// seedPokeAPI serves the bulbasaur line, pikachu and the eevee branches.
func seedPokeAPI(s *upstreamStub) {
	s.species(1, "bulbasaur", 1, [6]int{45, 49, 49, 65, 65, 45})
	s.species(2, "ivysaur", 1, [6]int{60, 62, 63, 80, 80, 60})
	s.species(3, "venusaur", 1, [6]int{80, 82, 83, 100, 100, 80})
	s.set("/evolution-chain/1/", `{"id":1,"chain":{"species":{"name":"bulbasaur"},"evolves_to":[
		{"species":{"name":"ivysaur"},"evolves_to":[{"species":{"name":"venusaur"},"evolves_to":[]}]}]}}`)

	s.species(25, "pikachu", 10, [6]int{35, 55, 40, 50, 50, 90})
	s.species(172, "pichu", 10, [6]int{20, 40, 15, 35, 35, 60})
	s.species(26, "raichu", 10, [6]int{60, 90, 55, 90, 80, 110})
	s.set("/evolution-chain/10/", `{"id":10,"chain":{"species":{"name":"pichu"},"evolves_to":[
		{"species":{"name":"pikachu"},"evolves_to":[{"species":{"name":"raichu"},"evolves_to":[]}]}]}}`)
	s.set("/pokemon/pikachu/encounters", `[{"location_area":{"name":"viridian-forest-area"}}]`)
	s.set("/pokemon/25/encounters", `[]`)

	s.species(133, "eevee", 67, [6]int{55, 55, 50, 45, 65, 55})
	s.species(134, "vaporeon", 67, [6]int{130, 65, 60, 110, 95, 65})
	s.species(135, "jolteon", 67, [6]int{65, 65, 60, 110, 95, 130})
	s.set("/evolution-chain/67/", `{"id":67,"chain":{"species":{"name":"eevee"},"evolves_to":[
		{"species":{"name":"vaporeon"},"evolves_to":[]},{"species":{"name":"jolteon"},"evolves_to":[]}]}}`)
}

// seedNBA serves a small API-NBA world around the Atlanta Hawks.
func seedNBA(s *upstreamStub) {
	s.set("/teams", `{"response":[
		{"id":1,"name":"Atlanta Hawks","nickname":"Hawks","code":"ATL","city":"Atlanta","nbaFranchise":true,
		 "arena":{"name":"State Farm Arena","latitude":33.757,"longitude":-84.396}},
		{"id":2,"name":"Boston Celtics","nickname":"Celtics","code":"BOS","city":"Boston","nbaFranchise":true},
		{"id":3,"name":"Team Lebron","nickname":"Lebron","code":"LBN","nbaFranchise":false}]}`)
	s.set("/games", `{"response":[
		{"id":11,"season":2023,"date":{"start":"2023-10-25T23:30:00.000Z"},"teams":{"home":{"id":1},"visitors":{"id":4}}},
		{"id":12,"season":2023,"date":{"start":"2023-10-27T23:30:00.000Z"},"teams":{"home":{"id":5},"visitors":{"id":1}}}]}`)
	s.set("/players/statistics", `{"response":[
		{"player":{"id":124,"firstname":"Trae","lastname":"Young"},"team":{"id":1},"game":{"id":11},"points":30,"totReb":3,"assists":12},
		{"player":{"id":125,"firstname":"Dejounte","lastname":"Murray"},"team":{"id":1},"game":{"id":11},"points":20,"totReb":6,"assists":5},
		{"player":{"id":124,"firstname":"Trae","lastname":"Young"},"team":{"id":1},"game":{"id":12},"points":24,"totReb":2,"assists":10},
		{"player":{"id":900,"firstname":"Other","lastname":"Team"},"team":{"id":4},"game":{"id":11},"points":99,"totReb":1,"assists":1}]}`)
	s.set("/standings", `{"response":[{"season":2023,"team":{"id":1,"name":"Atlanta Hawks","code":"ATL"},
		"conference":{"name":"east","rank":10},"win":{"total":36,"percentage":".439"},"loss":{"total":46}}]}`)
	s.set("/players", `{"response":[{"id":124,"firstname":"Trae","lastname":"Young"}]}`)
	s.set("/seasons", `{"response":[2015,2023,2016]}`)
}

// fixture is a started service wired to stub upstreams.
type fixture struct {
	svc  *service.Service
	poke *upstreamStub
	nba  *upstreamStub
}

func newFixture(t *testing.T, opts ...service.Option) *fixture {
	t.Helper()
	f := &fixture{poke: newStub(), nba: newStub()}
	t.Cleanup(f.poke.Close)
	t.Cleanup(f.nba.Close)
	seedPokeAPI(f.poke)
	seedNBA(f.nba)

	pc, err := pokeapi.New(f.poke.URL)
	if err != nil {
		t.Fatal(err)
	}
	nc, err := nbaapi.New(f.nba.URL, "api-nba-v1.p.rapidapi.com", "test-key")
	if err != nil {
		t.Fatal(err)
	}
	opts = append([]service.Option{
		service.WithPokeAPI(pc),
		service.WithNBA(nc),
		service.WithLogger(logger.Discard()),
	}, opts...)
	f.svc = service.New(opts...)
	return f
}
