// Package testutil holds the fakes shared by tgwire's tests: a mock Bot
// API server, canned replies and fixtures, a recording sleeper, and
// client constructors tuned for retry and breaker tests.
//
// Replies are encoded with the codec package, so a test exercises the
// same decode path as production:
//
//	server := testutil.NewMockServer(t)
//	server.OnAPI("sendMessage", func(w http.ResponseWriter, r *http.Request) {
//		testutil.ReplyMessage(w, 123)
//	})
//	client := testutil.NewTestClient(t, server.BaseURL())
//	...
//	req := server.LastCapture()
//	assert.Equal(t, "sendMessage", req.APIMethod)
//	req.AssertJSONField(t, "chat_id", "123")
package testutil
