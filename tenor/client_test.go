package tenor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-key")
	client.HTTP = server.Client()
	client.Endpoint = server.URL
	return client, server
}

func TestSearch(t *testing.T) {
	Convey("Search", t, func() {
		Convey("Should pass the query, key and clamped limit", func() {
			var gotQuery, gotKey, gotLimit string
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query().Get("q")
				gotKey = r.URL.Query().Get("key")
				gotLimit = r.URL.Query().Get("limit")
				fmt.Fprintf(w, `{"results": [%s], "next": "1"}`, sampleResult)
			})
			defer server.Close()

			results, err := client.Search("excited cat", 500)
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 1)
			So(results[0].ID, ShouldEqual, "16989471141791455574")
			So(gotQuery, ShouldEqual, "excited cat")
			So(gotKey, ShouldEqual, "test-key")
			So(gotLimit, ShouldEqual, "50")
		})

		Convey("Should preserve API response order", func() {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"results": [
					{"id": "b", "itemurl": "https://tenor.com/view/b", "media": []},
					{"id": "a", "itemurl": "https://tenor.com/view/a", "media": []},
					{"id": "c", "itemurl": "https://tenor.com/view/c", "media": []}
				]}`)
			})
			defer server.Close()

			results, err := client.Search("cat", 3)
			So(err, ShouldBeNil)
			So(results[0].ID, ShouldEqual, "b")
			So(results[1].ID, ShouldEqual, "a")
			So(results[2].ID, ShouldEqual, "c")
		})

		Convey("Should treat a non-success status as fatal", func() {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "forbidden", http.StatusForbidden)
			})
			defer server.Close()

			_, err := client.Search("cat", 5)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "403")
		})

		Convey("Should treat a malformed body as a schema error", func() {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"results": "not-a-list"}`)
			})
			defer server.Close()

			_, err := client.Search("cat", 5)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "decode")
		})
	})
}

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		Convey("Should return the raw media bytes", func() {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("GIF89a-payload"))
			})
			defer server.Close()

			data, err := client.Fetch(server.URL + "/full.gif")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "GIF89a-payload")
		})

		Convey("Should treat a non-success status as fatal", func() {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "gone", http.StatusGone)
			})
			defer server.Close()

			_, err := client.Fetch(server.URL + "/full.gif")
			So(err, ShouldNotBeNil)
		})
	})
}
