package testutil

import "github.com/prilive-com/tgwire/tg"

// Test constants for consistent test data.
const (
	// TestToken is a valid-format bot token for testing.
	TestToken = "123456789:ABCdefGHIjklMNOpqrsTUVwxyz"

	// TestChatID is a test chat ID.
	TestChatID = int64(123456789)

	// TestUserID is a test user ID.
	TestUserID = int64(987654321)

	// TestBotID is a test bot ID.
	TestBotID = int64(123456789)

	// TestUsername is a test username.
	TestUsername = "testuser"

	// TestBotUsername is a test bot username.
	TestBotUsername = "testbot"

	testDate = int64(1234567890)
)

// APIPath returns the mock server path of a Bot API method for TestToken.
func APIPath(method string) string {
	return "/bot" + TestToken + "/" + method
}

// TestUser returns a test user fixture.
func TestUser() tg.User {
	return tg.User{
		ID:        TestUserID,
		FirstName: "Test",
		LastName:  "User",
		Username:  TestUsername,
	}
}

// TestBotSelf returns the getMe result for the test bot.
func TestBotSelf() tg.BotSelf {
	return tg.BotSelf{
		ID:            TestBotID,
		FirstName:     "Test Bot",
		Username:      TestBotUsername,
		CanJoinGroups: true,
	}
}

// TestChat returns a test private chat fixture.
func TestChat() tg.PrivateChat {
	return tg.PrivateChat{
		ID:        TestChatID,
		FirstName: "Test",
		LastName:  "User",
		Username:  TestUsername,
	}
}

// TestMessage returns a test text message from TestUser in TestChat.
func TestMessage(messageID int64, text string) tg.Message {
	return TestMessageInChat(messageID, TestChat(), text)
}

// TestMessageInChat returns a test text message for a specific chat.
func TestMessageInChat(messageID int64, chat tg.Chat, text string) tg.Message {
	return tg.Message{
		ID:      messageID,
		Source:  tg.UserSource{From: TestUser()},
		Date:    testDate,
		Chat:    chat,
		Content: tg.TextContent{Text: text},
	}
}

// TestChannelPost returns a channel post signed by the channel itself.
func TestChannelPost(messageID int64, channelID int64, text string) tg.Message {
	ch := tg.ChannelChat{ID: channelID, Title: "Test Channel"}
	return tg.Message{
		ID:      messageID,
		Source:  tg.ChannelSource{SenderChat: ch},
		Date:    testDate,
		Chat:    ch,
		Content: tg.TextContent{Text: text},
	}
}

// TestUpdate returns a message update with a text message.
func TestUpdate(updateID int64, text string) tg.Update {
	return TestUpdateWithMessage(updateID, TestMessage(1, text))
}

// TestUpdateWithMessage returns a message update with a custom message.
func TestUpdateWithMessage(updateID int64, msg tg.Message) tg.Update {
	return tg.MessageUpdate{
		UpdateHeader: tg.UpdateHeader{ID: updateID},
		Message:      msg,
	}
}

// TestCallbackQuery returns a test callback query fixture.
func TestCallbackQuery(id, data string) tg.CallbackQuery {
	msg := TestMessage(1, "Original message")
	return tg.CallbackQuery{
		ID:           id,
		From:         TestUser(),
		Message:      &msg,
		ChatInstance: "instance_123",
		Data:         data,
	}
}

// TestUpdateWithCallback returns a callback query update.
func TestUpdateWithCallback(updateID int64, cbID, cbData string) tg.Update {
	return tg.CallbackQueryUpdate{
		UpdateHeader:  tg.UpdateHeader{ID: updateID},
		CallbackQuery: TestCallbackQuery(cbID, cbData),
	}
}

// TestInlineKeyboard returns a test inline keyboard fixture.
func TestInlineKeyboard(rows ...[]tg.InlineKeyboardButton) *tg.InlineKeyboardMarkup {
	return tg.InlineKeyboard(rows...)
}
