package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"circuitsheet/chart"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "CIRCUIT_"

// HTTP 服务配置
type HTTP struct {
	Addr string `yaml:"addr"` // 监听地址
}

// Chart 网页图表配置
type Chart struct {
	Theme  string `yaml:"theme"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Plot 静态图片配置，尺寸单位为英寸
type Plot struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Format string  `yaml:"format"`
}

// Config 程序配置
type Config struct {
	HTTP  HTTP  `yaml:"http"`
	Chart Chart `yaml:"chart"`
	Plot  Plot  `yaml:"plot"`
	Debug bool  `yaml:"debug"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		HTTP: HTTP{Addr: ":8080"},
		Chart: Chart{
			Theme:  chart.DefaultOptions.Theme,
			Width:  chart.DefaultOptions.Width,
			Height: chart.DefaultOptions.Height,
		},
		Plot: Plot{Width: 6, Height: 4, Format: chart.FormatPNG},
	}
}

// Load 加载配置
// 依次应用默认值、YAML 文件、.env 文件与 CIRCUIT_* 环境变量，后者覆盖前者。
// 参数path: YAML 文件路径，为空或文件不存在时跳过。
// 参数envFile: .env 文件路径，为空或文件不存在时跳过。
func Load(path, envFile string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("配置文件不存在，使用默认配置: %s", path)
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}
	if envFile != "" {
		// 已存在的环境变量不会被覆盖
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("env %s: %w", envFile, err)
		}
	}
	if err := c.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

// applyEnv 应用环境变量覆盖
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, set func(string) error) {
		if v, ok := lookup(EnvPrefix + key); ok {
			if err := set(strings.TrimSpace(v)); err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
			}
		}
	}
	str("HTTP_ADDR", &c.HTTP.Addr)
	str("CHART_THEME", &c.Chart.Theme)
	str("PLOT_FORMAT", &c.Plot.Format)
	num("CHART_WIDTH", func(s string) (err error) { c.Chart.Width, err = strconv.Atoi(s); return })
	num("CHART_HEIGHT", func(s string) (err error) { c.Chart.Height, err = strconv.Atoi(s); return })
	num("PLOT_WIDTH", func(s string) (err error) { c.Plot.Width, err = strconv.ParseFloat(s, 64); return })
	num("PLOT_HEIGHT", func(s string) (err error) { c.Plot.Height, err = strconv.ParseFloat(s, 64); return })
	num("DEBUG", func(s string) (err error) { c.Debug, err = strconv.ParseBool(s); return })
	return errors.Join(errs...)
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr must not be empty"))
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height))
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		errs = append(errs, fmt.Errorf("plot size must be positive, got %gx%g", c.Plot.Width, c.Plot.Height))
	}
	if c.Plot.Format != chart.FormatPNG && c.Plot.Format != chart.FormatSVG {
		errs = append(errs, fmt.Errorf("plot.format: %w: %q", chart.ErrFormat, c.Plot.Format))
	}
	return errors.Join(errs...)
}

// ChartOptions 网页图表选项
func (c *Config) ChartOptions() chart.Options {
	return chart.Options{Theme: c.Chart.Theme, Width: c.Chart.Width, Height: c.Chart.Height}
}
