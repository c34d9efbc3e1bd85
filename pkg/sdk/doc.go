// Package feedrank provides a Go client for the feedrank news
// recommendation service.
//
// The client uploads a TikTok user data export and receives news
// articles ranked by similarity to the user's hashtag activity:
//
//	client := feedrank.New("http://localhost:8080",
//	    feedrank.WithAPIKey("service-key"),
//	)
//	articles, err := client.Recommend(ctx, archiveJSON, newsAPIKey)
//	if errors.Is(err, feedrank.ErrNoHashtags) {
//	    // export contains no hashtag activity
//	}
//
// Service-side failures are returned as *APIError; well-known failure
// modes additionally match the exported sentinel errors via errors.Is.
package feedrank
