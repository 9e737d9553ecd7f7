package site_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/explorer/internal/adapters/http/site"
	"github.com/okian/explorer/internal/adapters/nbaapi"
	"github.com/okian/explorer/internal/adapters/pokeapi"
	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func stats(values ...int) string {
	names := []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf(`{"base_stat":%d,"stat":{"name":%q}}`, v, names[i])
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func upstreams() *httptest.Server {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/poke/pokemon/pikachu":
			fmt.Fprintf(w, `{"id":25,"name":"pikachu","height":4,"weight":60,
				"moves":[{"move":{"name":"thunder-shock"}},{"move":{"name":"<b>tail-whip</b>"}}],"stats":%s}`,
				stats(35, 55, 40, 50, 50, 90))
		case "/poke/pokemon/raichu":
			fmt.Fprintf(w, `{"id":26,"name":"raichu","stats":%s}`, stats(60, 90, 55, 90, 80, 110))
		case "/poke/pokemon/magnemite":
			fmt.Fprintf(w, `{"id":81,"name":"magnemite","stats":%s}`, stats(25, 35))
		case "/poke/pokemon/magneton":
			fmt.Fprintf(w, `{"id":82,"name":"magneton","stats":%s}`, stats(50, 0, 95, 120, 70, 70))
		case "/poke/pokemon-species/magnemite":
			fmt.Fprintf(w, `{"id":81,"name":"magnemite","evolution_chain":{"url":"%s/poke/evolution-chain/34/"}}`, srv.URL)
		case "/poke/evolution-chain/34/":
			_, _ = w.Write([]byte(`{"id":34,"chain":{"species":{"name":"magnemite"},"evolves_to":[
				{"species":{"name":"magneton"},"evolves_to":[]}]}}`))
		case "/poke/pokemon-species/pikachu":
			fmt.Fprintf(w, `{"id":25,"name":"pikachu","evolution_chain":{"url":"%s/poke/evolution-chain/10/"}}`, srv.URL)
		case "/poke/evolution-chain/10/":
			_, _ = w.Write([]byte(`{"id":10,"chain":{"species":{"name":"pikachu"},"evolves_to":[
				{"species":{"name":"raichu"},"evolves_to":[]}]}}`))
		case "/poke/pokemon/ditto":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "/nba/standings":
			if r.URL.Query().Get("season") != "2022" {
				_, _ = w.Write([]byte(`{"response":[]}`))
				return
			}
			_, _ = w.Write([]byte(`{"response":[{"season":2022,"team":{"id":1,"name":"Atlanta Hawks","code":"ATL"},
				"conference":{"name":"east","rank":7},"division":{"name":"southeast","rank":2},
				"win":{"total":41,"percentage":"0.500"},"loss":{"total":41},"gamesBehind":"16.0"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	return srv
}

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	up := upstreams()
	t.Cleanup(up.Close)

	pc, err := pokeapi.New(up.URL + "/poke")
	if err != nil {
		t.Fatal(err)
	}
	nc, err := nbaapi.New(up.URL+"/nba", "host", "key")
	if err != nil {
		t.Fatal(err)
	}
	svc := service.New(service.WithPokeAPI(pc), service.WithNBA(nc), service.WithLogger(logger.Discard()))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	site.New(svc, logger.Discard()).Register(context.Background(), mux)
	return mux
}

func get(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestSite_Pages(t *testing.T) {
	Convey("Given a registered dashboard", t, func() {
		mux := newMux(t)

		Convey("The index links both explorers", func() {
			w := get(mux, "/")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
			So(w.Body.String(), ShouldContainSubstring, `action="/pokemon"`)
			So(w.Body.String(), ShouldContainSubstring, `action="/nba/standings"`)
		})

		Convey("Unknown paths are not served", func() {
			So(get(mux, "/some-asset").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("The species page without a name shows only the form", func() {
			w := get(mux, "/pokemon")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldNotContainSubstring, "<table>")
		})

		Convey("The species page renders the profile and evolution table", func() {
			w := get(mux, "/pokemon?name=Pikachu")
			body := w.Body.String()
			So(w.Code, ShouldEqual, http.StatusOK)
			So(body, ShouldContainSubstring, "<title>pikachu</title>")
			So(body, ShouldContainSubstring, "<td>speed</td><td>90</td>")
			So(body, ShouldContainSubstring, `href="/pokemon?name=raichu"`)
			So(body, ShouldContainSubstring, "<td>110</td>")
		})

		Convey("A stat a species lacks renders as an empty cell", func() {
			body := get(mux, "/pokemon?name=magnemite").Body.String()
			So(body, ShouldContainSubstring, `<a href="/pokemon?name=magnemite">magnemite</a></td><td>25</td><td>35</td><td></td><td></td><td></td><td></td></tr>`)
			So(body, ShouldContainSubstring, `<a href="/pokemon?name=magneton">magneton</a></td><td>50</td><td>0</td><td>95</td>`)
		})

		Convey("Upstream text is escaped", func() {
			body := get(mux, "/pokemon?name=pikachu").Body.String()
			So(body, ShouldContainSubstring, "&lt;b&gt;tail-whip&lt;/b&gt;")
			So(body, ShouldNotContainSubstring, "<b>tail-whip")
		})

		Convey("Failures render an error page with a matching status", func() {
			So(get(mux, "/pokemon?name=missingno").Code, ShouldEqual, http.StatusNotFound)
			So(get(mux, "/pokemon?name=ditto").Code, ShouldEqual, http.StatusBadGateway)
			w := get(mux, "/pokemon?name=9999")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, `class="error"`)
		})

		Convey("The standings page lists the season's teams", func() {
			w := get(mux, "/nba/standings?season=2022")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "NBA standings 2022")
			So(w.Body.String(), ShouldContainSubstring, "<td>Atlanta Hawks</td>")
		})

		Convey("The standings page reports empty seasons and bad input", func() {
			w := get(mux, "/nba/standings")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(w.Body.String(), ShouldContainSubstring, "NBA standings 2023")
			So(get(mux, "/nba/standings?season=abc").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestSite_Unstarted(t *testing.T) {
	Convey("Given a dashboard over a stopped service", t, func() {
		mux := http.NewServeMux()
		site.New(service.New(), nil).Register(context.Background(), mux)

		So(get(mux, "/pokemon?name=pikachu").Code, ShouldEqual, http.StatusServiceUnavailable)
		So(get(mux, "/").Code, ShouldEqual, http.StatusOK)
	})
}

func TestSite_Register(t *testing.T) {
	Convey("Given a nil mux", t, func() {
		So(func() {
			site.New(service.New(), nil).Register(context.Background(), nil)
		}, ShouldPanic)
	})

	Convey("Given a context.TODO registration", t, func() {
		So(func() {
			site.New(service.New(), nil).Register(context.TODO(), http.NewServeMux())
		}, ShouldNotPanic)
	})

	Convey("Given site error constants", t, func() {
		So(site.ErrRender, ShouldNotBeNil)
		So(site.ErrRender.Error(), ShouldEqual, "page render failed")
	})
}
