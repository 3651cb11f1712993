package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	FileName  = "hunttrack.yaml"
	EnvFile   = ".env"
	envPrefix = "HUNTTRACK_"
)

// Config is built once at startup and handed to constructors by value.
// Nothing mutates it afterwards.
type Config struct {
	DataDir    string
	ConfigPath string

	DailyStudyTargetMinutes int
	WeeklyApplicationGoal   int
	StatusOptions           []string
	InterviewStatuses       []string
	ClosedStatuses          []string
	UploadDirectory         string
	AllowedExtensions       []string
	StreakMinimumMinutes    int
	StreakGraceDays         int

	Storage      StorageConfig
	LogLevel     string
	HTTPAddr     string
	Redis        RedisConfig
	Achievements AchievementConfig
	Feedback     FeedbackConfig
}

type StorageConfig struct {
	Driver string
	Path   string
	DSN    string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	Channel  string
}

type AchievementConfig struct {
	StudyHours []int
	StreakDays []int
}

type FeedbackConfig struct {
	Fallback string
	Rules    []RuleConfig
	Messages map[string][]string
}

type RuleConfig struct {
	Category string            `yaml:"category"`
	When     []ConditionConfig `yaml:"when"`
}

type ConditionConfig struct {
	Metric string  `yaml:"metric"`
	Op     string  `yaml:"op"`
	Value  float64 `yaml:"value"`
}

// document mirrors the YAML file. Pointers and nil slices tell a missing key
// apart from an explicit zero.
type document struct {
	DailyStudyTargetMinutes *int     `yaml:"daily_study_target_minutes"`
	WeeklyApplicationGoal   *int     `yaml:"weekly_application_goal"`
	StatusOptions           []string `yaml:"status_options"`
	InterviewStatuses       []string `yaml:"interview_statuses"`
	ClosedStatuses          []string `yaml:"closed_statuses"`
	UploadDirectory         string   `yaml:"upload_directory"`
	StreakMinimumMinutes    *int     `yaml:"streak_minimum_minutes"`
	StreakGraceDays         *int     `yaml:"streak_grace_days"`
	LogLevel                string   `yaml:"log_level"`
	Storage                 struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
		DSN    string `yaml:"dsn"`
	} `yaml:"storage"`
	Uploads struct {
		AllowedExtensions []string `yaml:"allowed_extensions"`
	} `yaml:"uploads"`
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       *int   `yaml:"db"`
		Key      string `yaml:"key"`
		Channel  string `yaml:"channel"`
	} `yaml:"redis"`
	Achievements struct {
		StudyHours []int `yaml:"study_hours"`
		StreakDays []int `yaml:"streak_days"`
	} `yaml:"achievements"`
	Feedback struct {
		Fallback string              `yaml:"fallback"`
		Rules    []RuleConfig        `yaml:"rules"`
		Messages map[string][]string `yaml:"messages"`
	} `yaml:"feedback"`
}

// Options controls where Load looks. Lookup defaults to os.LookupEnv.
type Options struct {
	DataDir    string
	ConfigPath string
	Lookup     func(string) (string, bool)
}

func New(dataDir string) (Config, error) {
	return Load(Options{DataDir: dataDir})
}

// Default returns the configuration used when no document exists.
func Default(dataDir string) Config {
	return Config{
		DataDir:                 dataDir,
		ConfigPath:              filepath.Join(dataDir, FileName),
		DailyStudyTargetMinutes: 70,
		WeeklyApplicationGoal:   5,
		StatusOptions:           []string{"Applied", "Screening", "Interview", "Offer", "Rejected", "Withdrawn"},
		InterviewStatuses:       []string{"Interview", "Offer"},
		ClosedStatuses:          []string{"Rejected", "Withdrawn"},
		UploadDirectory:         filepath.Join(dataDir, "uploads"),
		AllowedExtensions:       []string{"pdf", "docx", "doc", "txt"},
		StreakMinimumMinutes:    1,
		StreakGraceDays:         1,
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   filepath.Join(dataDir, "hunttrack.db"),
		},
		LogLevel: "info",
		HTTPAddr: ":8081",
		Redis: RedisConfig{
			Key:     "hunttrack:dashboard",
			Channel: "hunttrack:dashboard",
		},
		Achievements: AchievementConfig{
			StudyHours: []int{30, 75, 150, 225, 300},
			StreakDays: []int{3, 7, 14, 30},
		},
		Feedback: DefaultFeedback(),
	}
}

// DefaultFeedback is the built-in rule set, checked top to bottom.
func DefaultFeedback() FeedbackConfig {
	return FeedbackConfig{
		Fallback: "keep_going",
		Rules: []RuleConfig{
			{Category: "excelling", When: []ConditionConfig{
				{Metric: "application_progress", Op: ">=", Value: 0.8},
				{Metric: "study_progress", Op: ">=", Value: 0.8},
			}},
			{Category: "job_momentum", When: []ConditionConfig{{Metric: "application_progress", Op: ">=", Value: 0.8}}},
			{Category: "study_momentum", When: []ConditionConfig{{Metric: "study_progress", Op: ">=", Value: 0.8}}},
			{Category: "on_fire", When: []ConditionConfig{{Metric: "current_streak", Op: ">=", Value: 7}}},
			{Category: "steady", When: []ConditionConfig{
				{Metric: "application_progress", Op: ">=", Value: 0.5},
				{Metric: "study_progress", Op: ">=", Value: 0.5},
			}},
			{Category: "building", When: []ConditionConfig{{Metric: "current_streak", Op: ">=", Value: 1}}},
			{Category: "no_data", When: []ConditionConfig{{Metric: "has_data", Op: "==", Value: 0}}},
			{Category: "slow_start", When: []ConditionConfig{
				{Metric: "application_progress", Op: "<", Value: 0.3},
				{Metric: "study_progress", Op: "<", Value: 0.3},
			}},
		},
		Messages: map[string][]string{
			"excelling": {
				"You're excelling in both job hunting and studying!",
				"Both goals are on track this week. Outstanding.",
			},
			"job_momentum": {
				"Your job search strategy is working. Keep refining it.",
				"Each application is a learning opportunity. Your search is going strong!",
			},
			"study_momentum": {
				"Your consistent study habits are building a strong foundation.",
				"Every minute of study is an investment in your future.",
			},
			"on_fire": {
				"A week-long streak! Consistency is your superpower.",
			},
			"steady": {
				"You're making solid progress on all fronts.",
			},
			"building": {
				"Small steps every day lead to big achievements.",
				"The streak is alive. Keep it going today.",
			},
			"no_data": {
				"Log your first application or study session to get started.",
			},
			"slow_start": {
				"Progress takes time. Stay consistent and keep pushing forward!",
			},
			"keep_going": {
				"Focus on progress, not perfection.",
				"Your consistent efforts will lead to great results!",
			},
		},
	}
}

// Load reads the optional YAML document, applies the optional .env file and
// process environment on top, and validates the result.
func Load(opts Options) (Config, error) {
	if strings.TrimSpace(opts.DataDir) == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default(opts.DataDir)
	if opts.ConfigPath != "" {
		cfg.ConfigPath = opts.ConfigPath
	}

	var explicit statusGroups
	raw, err := os.ReadFile(cfg.ConfigPath)
	switch {
	case err == nil:
		if explicit, err = cfg.merge(raw); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", cfg.ConfigPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if opts.ConfigPath != "" {
			return Config{}, fmt.Errorf("config file %s does not exist", opts.ConfigPath)
		}
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	dotenv, err := readDotenv(filepath.Join(opts.DataDir, EnvFile))
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}); err != nil {
		return Config{}, err
	}

	cfg.fitStatusGroups(explicit)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// statusGroups records which status groups the document set itself.
type statusGroups struct {
	interview bool
	closed    bool
}

// fitStatusGroups rewrites interview and closed statuses to the spelling used
// in status_options. Default members the status set no longer has are
// dropped; members the document wrote are kept so Validate reports them.
func (c *Config) fitStatusGroups(explicit statusGroups) {
	canonical := make(map[string]string, len(c.StatusOptions))
	for _, status := range c.StatusOptions {
		canonical[strings.ToLower(strings.TrimSpace(status))] = status
	}
	c.InterviewStatuses = fitGroup(c.InterviewStatuses, canonical, explicit.interview)
	c.ClosedStatuses = fitGroup(c.ClosedStatuses, canonical, explicit.closed)
}

func fitGroup(group []string, canonical map[string]string, keepUnknown bool) []string {
	out := make([]string, 0, len(group))
	for _, status := range group {
		if name, ok := canonical[strings.ToLower(strings.TrimSpace(status))]; ok {
			out = append(out, name)
			continue
		}
		if keepUnknown {
			out = append(out, status)
		}
	}
	return out
}

func readDotenv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("stat env file: %w", err)
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return values, nil
}

func (c *Config) merge(raw []byte) (statusGroups, error) {
	doc := document{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return statusGroups{}, err
	}
	if doc.DailyStudyTargetMinutes != nil {
		c.DailyStudyTargetMinutes = *doc.DailyStudyTargetMinutes
	}
	if doc.WeeklyApplicationGoal != nil {
		c.WeeklyApplicationGoal = *doc.WeeklyApplicationGoal
	}
	if doc.StatusOptions != nil {
		c.StatusOptions = doc.StatusOptions
	}
	if doc.InterviewStatuses != nil {
		c.InterviewStatuses = doc.InterviewStatuses
	}
	if doc.ClosedStatuses != nil {
		c.ClosedStatuses = doc.ClosedStatuses
	}
	if doc.UploadDirectory != "" {
		c.UploadDirectory = c.resolve(doc.UploadDirectory)
	}
	if doc.StreakMinimumMinutes != nil {
		c.StreakMinimumMinutes = *doc.StreakMinimumMinutes
	}
	if doc.StreakGraceDays != nil {
		c.StreakGraceDays = *doc.StreakGraceDays
	}
	if doc.LogLevel != "" {
		c.LogLevel = doc.LogLevel
	}
	if doc.Storage.Driver != "" {
		c.Storage.Driver = doc.Storage.Driver
	}
	if doc.Storage.Path != "" {
		c.Storage.Path = c.resolve(doc.Storage.Path)
	}
	if doc.Storage.DSN != "" {
		c.Storage.DSN = doc.Storage.DSN
	}
	if doc.Uploads.AllowedExtensions != nil {
		c.AllowedExtensions = doc.Uploads.AllowedExtensions
	}
	if doc.HTTP.Addr != "" {
		c.HTTPAddr = doc.HTTP.Addr
	}
	if doc.Redis.Addr != "" {
		c.Redis.Addr = doc.Redis.Addr
	}
	if doc.Redis.Password != "" {
		c.Redis.Password = doc.Redis.Password
	}
	if doc.Redis.DB != nil {
		c.Redis.DB = *doc.Redis.DB
	}
	if doc.Redis.Key != "" {
		c.Redis.Key = doc.Redis.Key
	}
	if doc.Redis.Channel != "" {
		c.Redis.Channel = doc.Redis.Channel
	}
	if doc.Achievements.StudyHours != nil {
		c.Achievements.StudyHours = doc.Achievements.StudyHours
	}
	if doc.Achievements.StreakDays != nil {
		c.Achievements.StreakDays = doc.Achievements.StreakDays
	}
	if doc.Feedback.Fallback != "" {
		c.Feedback.Fallback = doc.Feedback.Fallback
	}
	if doc.Feedback.Rules != nil {
		c.Feedback.Rules = doc.Feedback.Rules
	}
	for category, texts := range doc.Feedback.Messages {
		c.Feedback.Messages[category] = texts
	}
	return statusGroups{
		interview: doc.InterviewStatuses != nil,
		closed:    doc.ClosedStatuses != nil,
	}, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"DAILY_STUDY_TARGET_MINUTES", &c.DailyStudyTargetMinutes},
		{"WEEKLY_APPLICATION_GOAL", &c.WeeklyApplicationGoal},
		{"STREAK_MINIMUM_MINUTES", &c.StreakMinimumMinutes},
		{"STREAK_GRACE_DAYS", &c.StreakGraceDays},
		{"REDIS_DB", &c.Redis.DB},
	}
	for _, item := range ints {
		raw, ok := lookup(envPrefix + item.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, item.key, err)
		}
		*item.dst = n
	}

	strs := []struct {
		key    string
		dst    *string
		isPath bool
	}{
		{"UPLOAD_DIRECTORY", &c.UploadDirectory, true},
		{"DB_DRIVER", &c.Storage.Driver, false},
		{"DB_PATH", &c.Storage.Path, true},
		{"DB_DSN", &c.Storage.DSN, false},
		{"LOG_LEVEL", &c.LogLevel, false},
		{"HTTP_ADDR", &c.HTTPAddr, false},
		{"REDIS_ADDR", &c.Redis.Addr, false},
		{"REDIS_PASSWORD", &c.Redis.Password, false},
	}
	for _, item := range strs {
		raw, ok := lookup(envPrefix + item.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		value := strings.TrimSpace(raw)
		if item.isPath {
			value = c.resolve(value)
		}
		*item.dst = value
	}

	if raw, ok := lookup(envPrefix + "STATUS_OPTIONS"); ok && strings.TrimSpace(raw) != "" {
		c.StatusOptions = splitList(raw)
	}
	return nil
}

// Validate rejects documents that would break the closed status set or the
// metric targets.
func (c Config) Validate() error {
	if len(c.StatusOptions) == 0 {
		return fmt.Errorf("status_options must not be empty")
	}
	seen := map[string]struct{}{}
	for _, status := range c.StatusOptions {
		trimmed := strings.TrimSpace(status)
		if trimmed == "" {
			return fmt.Errorf("status_options contains a blank entry")
		}
		if trimmed != status {
			return fmt.Errorf("status %q has surrounding whitespace", status)
		}
		key := strings.ToLower(status)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("status %q is listed twice", status)
		}
		seen[key] = struct{}{}
	}
	for _, group := range [][]string{c.InterviewStatuses, c.ClosedStatuses} {
		for _, status := range group {
			if _, ok := seen[strings.ToLower(status)]; !ok {
				return fmt.Errorf("status %q is not in status_options", status)
			}
		}
	}
	if c.DailyStudyTargetMinutes < 0 {
		return fmt.Errorf("daily_study_target_minutes must be non-negative")
	}
	if c.WeeklyApplicationGoal < 0 {
		return fmt.Errorf("weekly_application_goal must be non-negative")
	}
	if c.StreakMinimumMinutes < 1 {
		return fmt.Errorf("streak_minimum_minutes must be at least 1")
	}
	if c.StreakGraceDays < 0 {
		return fmt.Errorf("streak_grace_days must be non-negative")
	}
	switch c.Storage.Driver {
	case "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for sqlite")
		}
	case "postgres":
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if len(c.AllowedExtensions) == 0 {
		return fmt.Errorf("uploads.allowed_extensions must not be empty")
	}
	for _, rule := range c.Feedback.Rules {
		if strings.TrimSpace(rule.Category) == "" {
			return fmt.Errorf("feedback rule without category")
		}
	}
	if strings.TrimSpace(c.Feedback.Fallback) == "" {
		return fmt.Errorf("feedback.fallback must not be empty")
	}
	return nil
}

// LogPath is where the terminal UI writes its log.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "logs", "hunttrack.log")
}

func (c Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.DataDir, path)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
