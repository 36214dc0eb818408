package gbce

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// http utils to deal with remote quote services.

// jwget issues a GET on addr and decodes the JSON response body into v.
func jwget(client *http.Client, addr string, v any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("GET %q: unexpected status %s", addr, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
