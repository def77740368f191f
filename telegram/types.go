// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "encoding/json"

// Result types. Fields the Bot API always returns are tagged
// validate:"required" and checked when decoding.

// User is a Telegram user or bot.
// See https://core.telegram.org/bots/api#user.
type User struct {
	ID                      int64  `json:"id" validate:"required"`
	IsBot                   bool   `json:"is_bot"`
	FirstName               string `json:"first_name" validate:"required"`
	LastName                string `json:"last_name,omitempty"`
	Username                string `json:"username,omitempty"`
	LanguageCode            string `json:"language_code,omitempty"`
	IsPremium               bool   `json:"is_premium,omitempty"`
	CanJoinGroups           bool   `json:"can_join_groups,omitempty"`
	CanReadAllGroupMessages bool   `json:"can_read_all_group_messages,omitempty"`
	SupportsInlineQueries   bool   `json:"supports_inline_queries,omitempty"`
}

// ChatType is the type of a chat.
type ChatType string

// Chat types.
const (
	ChatPrivate    ChatType = "private"
	ChatGroup      ChatType = "group"
	ChatSupergroup ChatType = "supergroup"
	ChatChannel    ChatType = "channel"
)

// Chat is a chat. See https://core.telegram.org/bots/api#chat.
type Chat struct {
	ID        int64    `json:"id" validate:"required"`
	Type      ChatType `json:"type" validate:"required"`
	Title     string   `json:"title,omitempty"`
	Username  string   `json:"username,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	IsForum   bool     `json:"is_forum,omitempty"`
}

// ChatFullInfo is the result of getChat.
// See https://core.telegram.org/bots/api#chatfullinfo.
type ChatFullInfo struct {
	Chat
	AccentColorID       int      `json:"accent_color_id"`
	MaxReactionCount    int      `json:"max_reaction_count"`
	Bio                 string   `json:"bio,omitempty"`
	Description         string   `json:"description,omitempty"`
	InviteLink          string   `json:"invite_link,omitempty"`
	PinnedMessage       *Message `json:"pinned_message,omitempty"`
	SlowModeDelay       int      `json:"slow_mode_delay,omitempty"`
	LinkedChatID        int64    `json:"linked_chat_id,omitempty"`
	HasProtectedContent bool     `json:"has_protected_content,omitempty"`
}

// Message is a message. Only the commonly used fields are decoded.
// See https://core.telegram.org/bots/api#message.
type Message struct {
	MessageID             int                   `json:"message_id" validate:"required"`
	MessageThreadID       int                   `json:"message_thread_id,omitempty"`
	From                  *User                 `json:"from,omitempty"`
	SenderChat            *Chat                 `json:"sender_chat,omitempty"`
	Date                  int64                 `json:"date" validate:"required"`
	BusinessConnectionID  string                `json:"business_connection_id,omitempty"`
	Chat                  Chat                  `json:"chat"`
	ForwardOrigin         *MessageOrigin        `json:"forward_origin,omitempty"`
	IsTopicMessage        bool                  `json:"is_topic_message,omitempty"`
	ReplyToMessage        *Message              `json:"reply_to_message,omitempty"`
	EditDate              int64                 `json:"edit_date,omitempty"`
	HasProtectedContent   bool                  `json:"has_protected_content,omitempty"`
	MediaGroupID          string                `json:"media_group_id,omitempty"`
	Text                  string                `json:"text,omitempty"`
	Entities              []MessageEntity       `json:"entities,omitempty" validate:"omitempty,dive"`
	Caption               string                `json:"caption,omitempty"`
	CaptionEntities       []MessageEntity       `json:"caption_entities,omitempty" validate:"omitempty,dive"`
	ShowCaptionAboveMedia bool                  `json:"show_caption_above_media,omitempty"`
	Photo                 []PhotoSize           `json:"photo,omitempty" validate:"omitempty,dive"`
	Document              *Document             `json:"document,omitempty"`
	PaidMedia             *PaidMediaInfo        `json:"paid_media,omitempty"`
	ReplyMarkup           *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// MessageOrigin describes the origin of a forwarded message. Which fields
// are set depends on Type: "user", "hidden_user", "chat" or "channel".
// See https://core.telegram.org/bots/api#messageorigin.
type MessageOrigin struct {
	Type            string `json:"type" validate:"required"`
	Date            int64  `json:"date"`
	SenderUser      *User  `json:"sender_user,omitempty"`
	SenderUserName  string `json:"sender_user_name,omitempty"`
	SenderChat      *Chat  `json:"sender_chat,omitempty"`
	Chat            *Chat  `json:"chat,omitempty"`
	MessageID       int    `json:"message_id,omitempty"`
	AuthorSignature string `json:"author_signature,omitempty"`
}

// MessageID is the result of copyMessage and forwardMessages.
type MessageID struct {
	MessageID int `json:"message_id" validate:"required"`
}

// EntityType is the type of a [MessageEntity].
type EntityType string

// Message entity types.
const (
	EntityMention              EntityType = "mention"      // @username
	EntityHashtag              EntityType = "hashtag"      // #hashtag
	EntityCashtag              EntityType = "cashtag"      // $USD
	EntityBotCommand           EntityType = "bot_command"  // /start@jobs_bot
	EntityURL                  EntityType = "url"          // https://telegram.org
	EntityEmail                EntityType = "email"        // do-not-reply@telegram.org
	EntityPhoneNumber          EntityType = "phone_number" // +1-212-555-0123
	EntityBold                 EntityType = "bold"
	EntityItalic               EntityType = "italic"
	EntityUnderline            EntityType = "underline"
	EntityStrikethrough        EntityType = "strikethrough"
	EntitySpoiler              EntityType = "spoiler"
	EntityBlockquote           EntityType = "blockquote"
	EntityExpandableBlockquote EntityType = "expandable_blockquote"
	EntityCode                 EntityType = "code" // monowidth string
	EntityPre                  EntityType = "pre"  // monowidth block
	EntityTextLink             EntityType = "text_link"
	EntityTextMention          EntityType = "text_mention"
	EntityCustomEmoji          EntityType = "custom_emoji"
)

// MessageEntity is a special entity in a text message, like a hashtag or a
// link. See https://core.telegram.org/bots/api#messageentity.
type MessageEntity struct {
	Type EntityType `json:"type" validate:"required"`
	// Offset in UTF-16 code units to the start of the entity.
	Offset int `json:"offset"`
	// Length of the entity in UTF-16 code units.
	Length int `json:"length"`
	// For "text_link" only, URL that will be opened after user taps on the text.
	URL string `json:"url,omitempty"`
	// For "text_mention" only, the mentioned user.
	User *User `json:"user,omitempty"`
	// For "pre" only, the programming language of the entity text.
	Language string `json:"language,omitempty"`
	// For "custom_emoji" only, unique identifier of the custom emoji.
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// PhotoSize is one size of a photo or a thumbnail.
type PhotoSize struct {
	FileID       string `json:"file_id" validate:"required"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// Document is a general file.
type Document struct {
	FileID       string `json:"file_id" validate:"required"`
	FileUniqueID string `json:"file_unique_id"`
	FileName     string `json:"file_name,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// PaidMediaInfo describes paid media attached to a message.
type PaidMediaInfo struct {
	StarCount int               `json:"star_count"`
	PaidMedia []json.RawMessage `json:"paid_media"`
}

// File is a file ready to be downloaded with [Bot.DownloadFile] or
// [Bot.FileURL]. See https://core.telegram.org/bots/api#file.
type File struct {
	FileID       string `json:"file_id" validate:"required"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
}

// CallbackQuery is an incoming callback query from an inline keyboard button.
type CallbackQuery struct {
	ID           string   `json:"id" validate:"required"`
	From         User     `json:"from"`
	Message      *Message `json:"message,omitempty"`
	ChatInstance string   `json:"chat_instance"`
	Data         string   `json:"data,omitempty"`
}

// Update is an incoming update. At most one of the optional fields is set.
// See https://core.telegram.org/bots/api#update.
type Update struct {
	UpdateID          int            `json:"update_id"`
	Message           *Message       `json:"message,omitempty"`
	EditedMessage     *Message       `json:"edited_message,omitempty"`
	ChannelPost       *Message       `json:"channel_post,omitempty"`
	EditedChannelPost *Message       `json:"edited_channel_post,omitempty"`
	CallbackQuery     *CallbackQuery `json:"callback_query,omitempty"`
}

// ResponseParameters describes why a request was unsuccessful.
// See https://core.telegram.org/bots/api#responseparameters.
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

// WebhookInfo is the current status of a webhook.
type WebhookInfo struct {
	URL                  string `json:"url"`
	HasCustomCertificate bool   `json:"has_custom_certificate"`
	PendingUpdateCount   int    `json:"pending_update_count"`
	LastErrorDate        int64  `json:"last_error_date,omitempty"`
	LastErrorMessage     string `json:"last_error_message,omitempty"`
	MaxConnections       int    `json:"max_connections,omitempty"`
}

// Parameter types.

// ParseMode selects how entities in text are parsed.
// See https://core.telegram.org/bots/api#formatting-options.
type ParseMode string

// Parse modes.
const (
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
	ParseModeHTML       ParseMode = "HTML"
	ParseModeMarkdown   ParseMode = "Markdown" // legacy
)

// ChatAction is the action broadcast by sendChatAction.
type ChatAction string

// Chat actions.
const (
	ActionTyping          ChatAction = "typing"
	ActionUploadPhoto     ChatAction = "upload_photo"
	ActionRecordVideo     ChatAction = "record_video"
	ActionUploadVideo     ChatAction = "upload_video"
	ActionRecordVoice     ChatAction = "record_voice"
	ActionUploadVoice     ChatAction = "upload_voice"
	ActionUploadDocument  ChatAction = "upload_document"
	ActionChooseSticker   ChatAction = "choose_sticker"
	ActionFindLocation    ChatAction = "find_location"
	ActionRecordVideoNote ChatAction = "record_video_note"
	ActionUploadVideoNote ChatAction = "upload_video_note"
)

// LinkPreviewOptions controls link preview generation.
type LinkPreviewOptions struct {
	IsDisabled       bool   `json:"is_disabled,omitempty"`
	URL              string `json:"url,omitempty"`
	PreferSmallMedia bool   `json:"prefer_small_media,omitempty"`
	PreferLargeMedia bool   `json:"prefer_large_media,omitempty"`
	ShowAboveText    bool   `json:"show_above_text,omitempty"`
}

// ReplyParameters describes the message to reply to.
// See https://core.telegram.org/bots/api#replyparameters.
type ReplyParameters struct {
	MessageID                int             `json:"message_id"`
	ChatID                   ChatID          `json:"chat_id,omitzero"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	Quote                    string          `json:"quote,omitempty"`
	QuoteParseMode           ParseMode       `json:"quote_parse_mode,omitempty"`
	QuoteEntities            []MessageEntity `json:"quote_entities,omitempty"`
	QuotePosition            int             `json:"quote_position,omitempty"`
}

// BotCommand is a command shown in the bot's menu.
type BotCommand struct {
	Command     string `json:"command" validate:"required"` // 1-32 chars, lowercase a-z, 0-9, _
	Description string `json:"description"`                 // 1-256 chars
}

// BotCommandScope selects which users see a set of commands. Type is one
// of "default", "all_private_chats", "all_group_chats",
// "all_chat_administrators", "chat", "chat_administrators" or
// "chat_member".
type BotCommandScope struct {
	Type   string `json:"type"`
	ChatID ChatID `json:"chat_id,omitzero"`
	UserID int64  `json:"user_id,omitempty"`
}
