package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName         = "datekit"
	AppID           = "com.github.omnislash-com.datekit"
	SettingsFile    = "datekit.yaml"
	EnvRunEnv       = "RUN_ENV"
	EnvLanguage     = "DATEKIT_LANG"
	CalendarProdID  = "-//datekit//Scheduler//EN"
	CalendarName    = "Schedule"
	CalendarDomain  = "datekit"
	CalendarVersion = "2.0"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// Run Environments
// -----------------------------------------------------------------------------

// Logging is only enabled in the development environment unless forced
// with --debug.
const (
	RunEnvDevelopment = "development"
	RunEnvStaging     = "staging"
	RunEnvProduction  = "production"
)

// RunEnvs lists the accepted values for the run_env setting.
var RunEnvs = []string{RunEnvDevelopment, RunEnvStaging, RunEnvProduction}

// -----------------------------------------------------------------------------
// Languages
// -----------------------------------------------------------------------------

const DefaultLanguage = "en"

// SupportedLanguages defines the list of available catalogs (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Date Encodings & Defaults
// -----------------------------------------------------------------------------

const (
	// EpochYear is the year of the day-offset epoch (January 1st, local midnight).
	EpochYear = 2000

	// Per-function default zones. They intentionally differ: some helpers
	// default to Pacific time and others to UTC.
	DefaultZonePacific = "America/Los_Angeles"
	DefaultZoneUTC     = "Etc/UTC"

	// DefaultTimeOfDay is used when an empty time of day is provided.
	DefaultTimeOfDay = "00:00 AM"

	// MilitaryHourFactor splits a military time integer into hour and minute.
	MilitaryHourFactor = 100

	MillisPerDay = 24 * 60 * 60 * 1000

	// MaxTimeMillis is the ECMAScript time value range (±8.64e15 ms).
	MaxTimeMillis = 8_640_000_000_000_000

	// ClockPM is the afternoon hour that triggers the next-day rule when
	// converting UTC instants to a zone.
	ClockPM = 17
)

// -----------------------------------------------------------------------------
// Layouts & Sentinels
// -----------------------------------------------------------------------------

const (
	// Wire layouts: "YYYY-MM-DDTHH:mm", "hh:mm A", "HHmm", "MM/DD/YYYY".
	LayoutDateTimeLocal = "2006-01-02T15:04"
	LayoutClock         = "03:04 PM"
	LayoutClockNumber   = "1504"
	LayoutDateSlash     = "01/02/2006"

	// US English short and long date renderings.
	LayoutShortDate = "1/2/2006"
	LayoutLongDate  = "Monday, January 2, 2006"

	LayoutISOMillis = "2006-01-02T15:04:05.000Z"

	// PlaceholderEmpty is shown when no date is available.
	PlaceholderEmpty = "-"

	// InvalidDate is printed for an unreadable date.
	InvalidDate = "Invalid Date"

	// InvalidFormat is printed when a formatted conversion fails.
	InvalidFormat = "Invalid date"

	// NullOutput is printed by the CLI for absent results.
	NullOutput = "null"
)

// -----------------------------------------------------------------------------
// Calendar Export
// -----------------------------------------------------------------------------

const (
	ICalScale  = "GREGORIAN"
	ICalMethod = "PUBLISH"

	// iCal Properties
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// FormatDescription renders the slot as a day offset and military time.
	FormatDescription = "day %d at %04d (%s)"

	DefaultSlotDuration = 30 * time.Minute
	DefaultSlotSummary  = "Scheduled slot"
	UIDHashLength       = 16
	FormatHashInput     = "%d|%d|%s|%s"
	FormatUID           = "%s@%s"

	// StubVCalendar is the minimal valid iCalendar object used when no slots are exported.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + CalendarProdID + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Feed Server
// -----------------------------------------------------------------------------

const (
	LocalhostBindAddr = "127.0.0.1"
	DefaultPort       = "18080"
	MinPort           = 1
	MaxPort           = 65535

	DefaultRefreshInterval = 1 * time.Minute
	ShutdownTimeout        = 5 * time.Second
	ServerReadTimeout      = 10 * time.Second
	ServerWriteTimeout     = 30 * time.Second
	ServerIdleTimeout      = 60 * time.Second
	RetryAfterSeconds      = "10"

	RouteFeed   = "GET /schedule.ics"
	RouteHealth = "GET /healthz"

	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`

	HTTPMsgInitializing = "Schedule feed initializing, please try again shortly."
	HTTPMsgHealthy      = "ok"
)

// -----------------------------------------------------------------------------
// Shared Status Types
// -----------------------------------------------------------------------------

// Status is the outcome reported by a StatusMessage.
type Status string

const (
	StatusOK    Status = "OK"
	StatusError Status = "ERROR"
)

// StatusMessage pairs a status with a human readable message.
type StatusMessage struct {
	Status  Status `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// LogMessage holds the canned user-facing messages.
type LogMessage string

const (
	LogMessageError         LogMessage = "Ooops, something went wrong. Please try again."
	LogMessageUpdateSuccess LogMessage = "Successfully updated!"
	LogMessageSuccess       LogMessage = "Success!"
	LogMessageSaved         LogMessage = "Successfully saved!"
	LogMessageNotFound      LogMessage = "Not Found"
)

// PasswordRecoveryStep tracks the password recovery flow.
type PasswordRecoveryStep string

const (
	RecoveryInitiate  PasswordRecoveryStep = "initiate"
	RecoveryEmailSent PasswordRecoveryStep = "email-sent"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// TKeyFormatDateShort holds the Go layout of the locale short date.
	TKeyFormatDateShort = "format_date_short"
	TKeyCopied          = "notif_copied"

	TKeyEmailRequired    = "err_email_required"
	TKeyEmailInvalid     = "err_email_invalid"
	TKeyFieldRequired    = "err_field_required"
	TKeyPasswordLength   = "err_password_length"
	TKeyPasswordDigit    = "err_password_digit"
	TKeyPasswordLower    = "err_password_lower"
	TKeyPasswordUpper    = "err_password_upper"
	TKeyPasswordSpecial  = "err_password_special"
	TKeyCodeRequired     = "err_code_required"
	TKeyStatusOK         = "status_ok"
	TKeyStatusError      = "status_error"
	TKeyMsgError         = "msg_error"
	TKeyMsgUpdateSuccess = "msg_update_success"
	TKeyMsgSuccess       = "msg_success"
	TKeyMsgSaved         = "msg_saved"
	TKeyMsgNotFound      = "msg_not_found"
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagConfig       = "config"
	FlagDebug        = "debug"
	FlagLanguage     = "lang"
	FlagZone         = "zone"
	FlagDuration     = "duration"
	FlagSummary      = "summary"
	FlagPort         = "port"
	FlagInterval     = "interval"
	FlagDescConfig   = "Path to the YAML settings file"
	FlagDescDebug    = "Enable debug logging to stderr regardless of run_env"
	FlagDescLanguage = "Message catalog language (overrides settings)"
	FlagDescZone     = "IANA zone used as the process local zone"
	FlagDescDuration = "Length of each exported slot"
	FlagDescSummary  = "Summary of each exported slot"
	FlagDescPort     = "Local port of the schedule feed"
	FlagDescInterval = "How often the slots file is re-read"
	MsgVersionOutput = "%s version %s (%s, built %s)\n"
)

// Credential field names accepted by the check command.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldCode     = "code"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrSettingsRead    = "failed to read settings file"
	ErrSettingsParse   = "failed to parse settings file"
	ErrSettingsInvalid = "invalid settings"
	ErrSettingsPath    = "settings path is empty"
	ErrRunEnv          = "unsupported run_env"
	ErrLanguage        = "unsupported language"
	ErrZone            = "unknown time zone"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrSlotsRead       = "failed to read slots file"
	ErrSlotsParse      = "failed to parse slots file"
	ErrClipboardWrite  = "failed to write to clipboard"
	ErrAppFailed       = "application failed unexpectedly"
	ErrArgument        = "invalid argument"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrPortNumber      = "server port must be a number"
	ErrPortRange       = "server port must be between 1 and 65535"
	ErrFeedRender      = "failed to render schedule feed"
	ErrWriteResp       = "failed to write HTTP response"
	ErrCheckFailed     = "validation failed"
	ErrUnknownField    = "unknown credential field"
	ErrCopyFailed      = "failed to copy value"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgSettingsMissing = "Settings file not found, using defaults"
	MsgSettingsLoaded  = "Settings loaded"
	MsgSettingsSaved   = "Settings saved"
	MsgZoneFallback    = "Unknown time zone, keeping source offset"
	MsgZoneUnknown     = "Unknown time zone"
	MsgDefaultDayTime  = "Input date is empty or invalid. Defaulting to day: 0, time: 0"
	MsgKeyMissing      = "Required key is missing in the object."
	MsgValueEmpty      = "Value for key is an empty string."
	MsgValueNaN        = "Value for key is not a valid number."
	MsgValueEmptyList  = "Value for key is an empty array."
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgCopied          = "Value copied to clipboard"
	MsgCopyFailed      = "Clipboard copy failed"
	MsgSlotSkipped     = "Skipping slot without a day"
	MsgExportSuccess   = "Calendar export successful"
	MsgServerListen    = "HTTP server listening"
	MsgServerStop      = "Shutting down HTTP server..."
	MsgFeedUpdated     = "Schedule feed updated"
	MsgAppStop         = "Application stopped"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyZone      = "zone"
	LogKeyValue     = "value"
	LogKeyRunEnv    = "run_env"
	LogKeyCount     = "count"
	LogKeySkipped   = "skipped"
	LogKeyAddr      = "addr"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompDates     = "dates"
	CompForms     = "forms"
	CompBus       = "bus"
	CompClipboard = "clipboard"
	CompCalendar  = "calendar"
	CompSettings  = "settings"
	CompI18n      = "i18n"
	CompMain      = "main"
	CompServer    = "server"
)
