package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/churchweb/mockapi/domain"
)

type Config struct {
	// ApiOrigin is the host:port the client application sends API calls to.
	// The interception transport answers requests for this origin in memory.
	ApiOrigin string `yaml:"api_origin" validate:"required"`
	Listen    string `yaml:"listen"`
	LogLevel  string `yaml:"log_level"`
	LogJSON   bool   `yaml:"log_json"`
	Jwt       Jwt    `yaml:"jwt"`
	Seed      Seed   `yaml:"seed"`
}

type Jwt struct {
	Key string        `yaml:"key" validate:"required"`
	TTL time.Duration `yaml:"ttl" validate:"required"`
}

// Seed describes the fixture state a fresh server starts with.
type Seed struct {
	Boards          []SeedBoard `yaml:"boards" validate:"required,dive"`
	EntriesPerBoard int         `yaml:"entries_per_board" validate:"min=0"`
	Users           []SeedUser  `yaml:"users" validate:"dive"`
}

type SeedBoard struct {
	Key   string `yaml:"key" validate:"required"`
	Title string `yaml:"title" validate:"required"`
}

type SeedUser struct {
	Username   string      `yaml:"username" validate:"required"`
	Password   string      `yaml:"password" validate:"required"`
	Email      string      `yaml:"email"`
	Name       string      `yaml:"name"`
	Role       domain.Role `yaml:"role"`
	IsApproved bool        `yaml:"is_approved"`
}

// Default returns the canonical fixture configuration used by the E2E suite:
// the ten community boards with 25 seeded entries each and the two stock
// accounts (admin/0000 and member/password1!).
func Default() *Config {
	return &Config{
		ApiOrigin: "localhost:3000",
		Listen:    ":3000",
		LogLevel:  "info",
		Jwt:       Jwt{Key: "mockapi-test-key", TTL: time.Hour},
		Seed: Seed{
			Boards: []SeedBoard{
				{Key: "notice", Title: "공지사항"},
				{Key: "sermon", Title: "설교"},
				{Key: "column", Title: "칼럼"},
				{Key: "weekly_bible_verse", Title: "금주의 성경 말씀"},
				{Key: "class_meeting", Title: "속회 교재실"},
				{Key: "sunday_school_resource", Title: "주일학교 자료실"},
				{Key: "general_forum", Title: "자유게시판"},
				{Key: "testimony", Title: "간증 게시판"},
				{Key: "photo_board", Title: "사진갤러리"},
				{Key: "school_photo_board", Title: "주일학교 사진갤러리"},
			},
			EntriesPerBoard: 25,
			Users: []SeedUser{
				{Username: "admin", Password: "0000", Email: "admin@example.com", Name: "관리자", Role: domain.RoleAdmin, IsApproved: true},
				{Username: "member", Password: "password1!", Email: "member@example.com", Name: "일반 유저", Role: domain.RoleUser, IsApproved: true},
			},
		},
	}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads a YAML config over the defaults and panics if the result
// does not validate. Values absent from the file keep their default.
func MustLoad(configPath string) *Config {
	cfg := Default()
	mustLoadPath(configPath, cfg)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}
