package tcp

import (
	"os"
	"time"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vnmea/codec"
	"github.com/vuuvv/vnmea/framing"
	"github.com/vuuvv/vnmea/log"
	"github.com/vuuvv/vnmea/parser"
	"gopkg.in/yaml.v3"
)

const (
	DefaultReadBufferSize  = 4096
	DefaultWriteBufferSize = 4096
	DefaultMaxConnections  = 1024
	DefaultCleanInterval   = 5 * time.Second
	DefaultStopTimeout     = 30 * time.Second
)

type ServerConfig struct {
	Address         string             `yaml:"address"`
	ReadBufferSize  int                `yaml:"read_buffer_size"`
	WriteBufferSize int                `yaml:"write_buffer_size"`
	MaxConnections  int                `yaml:"max_connections"`
	CleanInterval   time.Duration      `yaml:"clean_interval"` // 连接清理间隔
	IdleTimeout     time.Duration      `yaml:"idle_timeout"`   // 超过该时间没有数据则关闭连接, 0 表示不限制
	StopTimeout     time.Duration      `yaml:"stop_timeout"`
	Filter          string             `yaml:"filter"` // CEL 表达式, 见 codec.Filter
	Framing         framing.LineRule   `yaml:"framing"`
	Parser          *parser.FileConfig `yaml:"parser"`

	parserConfig parser.Config
	filter       *codec.Filter
}

func LoadServerConfigBytes(data []byte) (*ServerConfig, error) {
	config := &ServerConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "tcp config: invalid yaml")
	}
	return config, config.Setup()
}

func LoadServerConfigFile(path string) (*ServerConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer func() {
		_ = f.Close()
	}()
	config := &ServerConfig{}
	if err = yaml.NewDecoder(f).Decode(config); err != nil {
		return nil, errors.Wrapf(err, "tcp config: decode %s", path)
	}
	return config, config.Setup()
}

// Setup fills defaults and compiles the parser config and filter.
func (this *ServerConfig) Setup() (err error) {
	if this.Address == "" {
		return errors.New("ServerConfig.Setup: address should not be empty")
	}
	if this.ReadBufferSize == 0 {
		this.ReadBufferSize = DefaultReadBufferSize
	}
	if this.WriteBufferSize == 0 {
		this.WriteBufferSize = DefaultWriteBufferSize
	}
	if this.MaxConnections <= 0 {
		this.MaxConnections = DefaultMaxConnections
	}
	if this.CleanInterval <= 0 {
		this.CleanInterval = DefaultCleanInterval
	}
	if this.StopTimeout <= 0 {
		this.StopTimeout = DefaultStopTimeout
	}
	if err = this.Framing.Setup(); err != nil {
		return err
	}
	if this.parserConfig, err = this.Parser.Config(); err != nil {
		return err
	}
	if this.parserConfig.ErrorCallback == nil {
		this.parserConfig.ErrorCallback = log.ParseErrors()
	}
	if this.Filter != "" {
		if this.filter, err = codec.CompileFilter(this.Filter); err != nil {
			return err
		}
	}
	return nil
}

// ParserConfig is the configuration each connection's parser is
// initialized with. Valid after Setup. Rejected sentences are logged through
// log.ParseErrors with the connection key as source.
func (this *ServerConfig) ParserConfig() parser.Config {
	return this.parserConfig
}
