// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "encoding/json"

// The method catalog. Parameter field names follow the Bot API exactly;
// optional fields are omitted from requests when zero.

var (
	GetMe = newMethod[NoParams, User]("getMe",
		"Returns basic information about the bot.")
	SendMessage = newMethod[SendMessageParams, Message]("sendMessage",
		"Sends a text message.")
	ForwardMessage = newMethod[ForwardMessageParams, Message]("forwardMessage",
		"Forwards a message of any kind. Service messages and messages with protected content can't be forwarded.")
	ForwardMessages = newMethod[ForwardMessagesParams, []MessageID]("forwardMessages",
		"Forwards multiple messages of any kind, skipping those that can't be forwarded.")
	CopyMessage = newMethod[CopyMessageParams, MessageID]("copyMessage",
		"Copies a message without a link to the original message.")
	SendPaidMedia = newMethod[SendPaidMediaParams, Message]("sendPaidMedia",
		"Sends paid media.")
	EditMessageText = newMethod[EditMessageTextParams, Message]("editMessageText",
		"Edits text of a message sent by the bot.")
	DeleteMessage = newMethod[DeleteMessageParams, bool]("deleteMessage",
		"Deletes a message.")
	SendChatAction = newMethod[SendChatActionParams, bool]("sendChatAction",
		"Tells the user that something is happening on the bot's side.")
	AnswerCallbackQuery = newMethod[AnswerCallbackQueryParams, bool]("answerCallbackQuery",
		"Sends an answer to a callback query sent from an inline keyboard.")
	GetFile = newMethod[GetFileParams, File]("getFile",
		"Returns basic information about a file and prepares it for downloading.")
	GetChat = newMethod[GetChatParams, ChatFullInfo]("getChat",
		"Returns up-to-date information about a chat.")
	SetMyCommands = newMethod[SetMyCommandsParams, bool]("setMyCommands",
		"Changes the list of the bot's commands.")
	GetUpdates = newMethod[GetUpdatesParams, []Update]("getUpdates",
		"Receives incoming updates using long polling.")
	SetWebhook = newMethod[SetWebhookParams, bool]("setWebhook",
		"Specifies a URL to receive incoming updates via an outgoing webhook.")
	DeleteWebhook = newMethod[DeleteWebhookParams, bool]("deleteWebhook",
		"Removes webhook integration.")
	GetWebhookInfo = newMethod[NoParams, WebhookInfo]("getWebhookInfo",
		"Returns current webhook status.")
)

// SendMessageParams are parameters of sendMessage.
type SendMessageParams struct {
	BusinessConnectionID string              `json:"business_connection_id,omitempty"`
	ChatID               ChatID              `json:"chat_id"`
	MessageThreadID      int                 `json:"message_thread_id,omitempty"`
	Text                 string              `json:"text"`
	ParseMode            ParseMode           `json:"parse_mode,omitempty"`
	Entities             []MessageEntity     `json:"entities,omitempty"`
	LinkPreviewOptions   *LinkPreviewOptions `json:"link_preview_options,omitempty"`
	DisableNotification  bool                `json:"disable_notification,omitempty"`
	ProtectContent       bool                `json:"protect_content,omitempty"`
	AllowPaidBroadcast   bool                `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID      string              `json:"message_effect_id,omitempty"`
	ReplyParameters      *ReplyParameters    `json:"reply_parameters,omitempty"`
	ReplyMarkup          ReplyMarkup         `json:"reply_markup,omitempty"`
}

// ForwardMessageParams are parameters of forwardMessage.
type ForwardMessageParams struct {
	// Target chat.
	ChatID ChatID `json:"chat_id"`
	// Target forum topic; forum supergroups only.
	MessageThreadID int `json:"message_thread_id,omitempty"`
	// Chat where the original message was sent.
	FromChatID ChatID `json:"from_chat_id"`
	// New start timestamp for the forwarded video in the message.
	VideoStartTimestamp int `json:"video_start_timestamp,omitempty"`
	// Send the message silently.
	DisableNotification bool `json:"disable_notification,omitempty"`
	// Protect the forwarded message from forwarding and saving.
	ProtectContent bool `json:"protect_content,omitempty"`
	// Message identifier in the chat specified in FromChatID.
	MessageID int `json:"message_id"`
}

// ForwardMessagesParams are parameters of forwardMessages.
type ForwardMessagesParams struct {
	ChatID              ChatID `json:"chat_id"`
	MessageThreadID     int    `json:"message_thread_id,omitempty"`
	FromChatID          ChatID `json:"from_chat_id"`
	MessageIDs          []int  `json:"message_ids"` // 1-100, strictly increasing
	DisableNotification bool   `json:"disable_notification,omitempty"`
	ProtectContent      bool   `json:"protect_content,omitempty"`
}

// CopyMessageParams are parameters of copyMessage.
type CopyMessageParams struct {
	ChatID                ChatID           `json:"chat_id"`
	MessageThreadID       int              `json:"message_thread_id,omitempty"`
	FromChatID            ChatID           `json:"from_chat_id"`
	MessageID             int              `json:"message_id"`
	VideoStartTimestamp   int              `json:"video_start_timestamp,omitempty"`
	Caption               *string          `json:"caption,omitempty"` // empty string removes the caption
	ParseMode             ParseMode        `json:"parse_mode,omitempty"`
	CaptionEntities       []MessageEntity  `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool             `json:"show_caption_above_media,omitempty"`
	DisableNotification   bool             `json:"disable_notification,omitempty"`
	ProtectContent        bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast    bool             `json:"allow_paid_broadcast,omitempty"`
	ReplyParameters       *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup           ReplyMarkup      `json:"reply_markup,omitempty"`
}

// SendPaidMediaParams are parameters of sendPaidMedia.
type SendPaidMediaParams struct {
	// Business connection on behalf of which the message will be sent.
	BusinessConnectionID string `json:"business_connection_id,omitempty"`
	// Target chat. If it is a channel, Telegram Star proceeds are credited to
	// the chat's balance, otherwise to the bot's balance.
	ChatID ChatID `json:"chat_id"`
	// Number of Telegram Stars that must be paid to access the media; 1-10000.
	StarCount int `json:"star_count"`
	// Media to send; up to 10 items.
	Media []InputPaidMedia `json:"media"`
	// Bot-defined payload, 0-128 bytes, not shown to the user.
	Payload string `json:"payload,omitempty"`
	// Media caption, 0-1024 characters after entities parsing.
	Caption               string          `json:"caption,omitempty"`
	ParseMode             ParseMode       `json:"parse_mode,omitempty"`
	CaptionEntities       []MessageEntity `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool            `json:"show_caption_above_media,omitempty"`
	DisableNotification   bool            `json:"disable_notification,omitempty"`
	ProtectContent        bool            `json:"protect_content,omitempty"`
	// Allow up to 1000 messages per second for a fee of 0.1 Telegram Stars
	// per message, withdrawn from the bot's balance.
	AllowPaidBroadcast bool             `json:"allow_paid_broadcast,omitempty"`
	ReplyParameters    *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup        ReplyMarkup      `json:"reply_markup,omitempty"`
}

// EditMessageTextParams are parameters of editMessageText for messages
// sent to chats. Editing inline messages returns true instead of a message
// and isn't covered by this descriptor.
type EditMessageTextParams struct {
	BusinessConnectionID string                `json:"business_connection_id,omitempty"`
	ChatID               ChatID                `json:"chat_id"`
	MessageID            int                   `json:"message_id"`
	Text                 string                `json:"text"`
	ParseMode            ParseMode             `json:"parse_mode,omitempty"`
	Entities             []MessageEntity       `json:"entities,omitempty"`
	LinkPreviewOptions   *LinkPreviewOptions   `json:"link_preview_options,omitempty"`
	ReplyMarkup          *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// DeleteMessageParams are parameters of deleteMessage.
type DeleteMessageParams struct {
	ChatID    ChatID `json:"chat_id"`
	MessageID int    `json:"message_id"`
}

// SendChatActionParams are parameters of sendChatAction.
type SendChatActionParams struct {
	BusinessConnectionID string     `json:"business_connection_id,omitempty"`
	ChatID               ChatID     `json:"chat_id"`
	MessageThreadID      int        `json:"message_thread_id,omitempty"`
	Action               ChatAction `json:"action"`
}

// AnswerCallbackQueryParams are parameters of answerCallbackQuery.
type AnswerCallbackQueryParams struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
	URL             string `json:"url,omitempty"`
	CacheTime       int    `json:"cache_time,omitempty"`
}

// GetFileParams are parameters of getFile.
type GetFileParams struct {
	FileID string `json:"file_id"`
}

// GetChatParams are parameters of getChat.
type GetChatParams struct {
	ChatID ChatID `json:"chat_id"`
}

// SetMyCommandsParams are parameters of setMyCommands.
type SetMyCommandsParams struct {
	Commands     []BotCommand     `json:"commands"`
	Scope        *BotCommandScope `json:"scope,omitempty"`
	LanguageCode string           `json:"language_code,omitempty"`
}

// GetUpdatesParams are parameters of getUpdates. Timeout is in seconds;
// the context passed to Call must allow at least that long.
type GetUpdatesParams struct {
	Offset         int      `json:"offset,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Timeout        int      `json:"timeout,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// SetWebhookParams are parameters of setWebhook. Uploading a self-signed
// certificate isn't supported.
type SetWebhookParams struct {
	URL                string   `json:"url"`
	IPAddress          string   `json:"ip_address,omitempty"`
	MaxConnections     int      `json:"max_connections,omitempty"`
	AllowedUpdates     []string `json:"allowed_updates,omitempty"`
	DropPendingUpdates bool     `json:"drop_pending_updates,omitempty"`
	SecretToken        string   `json:"secret_token,omitempty"`
}

// DeleteWebhookParams are parameters of deleteWebhook.
type DeleteWebhookParams struct {
	DropPendingUpdates bool `json:"drop_pending_updates,omitempty"`
}

// Raw is a method descriptor for calls whose parameters and result are
// handled as raw JSON, for example methods missing from this catalog.
func Raw(name string) Method[json.RawMessage, json.RawMessage] {
	return Method[json.RawMessage, json.RawMessage]{Name: name}
}
