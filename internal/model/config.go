package model

type Config struct {
	DataDir string `yaml:"data_dir"`
	Editor  string `yaml:"editor"`
	Gemini  struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
	Notion struct {
		APIKey     string `yaml:"api_key"`
		DatabaseID string `yaml:"database_id"`
	} `yaml:"notion"`
	Backup struct {
		Enable     bool   `yaml:"enable"`
		Bucket     string `yaml:"bucket"`
		AWSProfile string `yaml:"aws_profile"`
		AWSRegion  string `yaml:"aws_region"`
	} `yaml:"backup"`
}

func DefaultConfig() Config {
	config := Config{
		DataDir: "~/.config/taskplan/data",
		Editor:  "vim",
	}
	config.Gemini.Model = "models/gemini-1.5-pro"
	config.Backup.AWSRegion = "ap-northeast-1"
	return config
}
