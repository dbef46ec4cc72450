// The [ncmb] package is a Go client for the NIFCLOUD mobile backend REST API.
//
// # Requests
//
// Every request is signed with the application and client keys. The
// [github.com/ncmb/ncmb.go/pkg/request] package builds the URL with its
// sorted query string and computes the X-NCMB-Signature header through
// [github.com/ncmb/ncmb.go/pkg/signature].
//
// The HTTP transport is injected through [Config].HTTPClient. Any value with
// a Do(*http.Request) method works, which keeps tests free of the network.
//
// # Objects
//
// Objects are held in a [fields.Store]. The store remembers which fields
// changed since the last server response, so [Client.SaveObject] sends a
// partial update with only those fields:
//
//	post := fields.New("Post")
//	post.Set("title", "hello")
//	post.Set("location", models.NewGeoPoint(35.6, 139.7))
//	err := client.SaveObject(ctx, post) // POST, then objectId is set
//
//	post.Increment("views", 1)
//	err = client.SaveObject(ctx, post) // PUT {"views":{"__op":"Increment","amount":1}}
//
// Typed values such as dates, pointers and geo points travel as tagged JSON
// objects; see the [github.com/ncmb/ncmb.go/pkg/models] package.
//
// # Queries
//
// [Client.FindObjects] and [Client.CountObjects] run a
// [github.com/ncmb/ncmb.go/pkg/query] search.
//
// # Use Send for low-level control
//
// [Client.Send] executes any [request.Spec]. [Client.SendAsync] does the same
// in the background and delivers exactly one result.
package ncmb
