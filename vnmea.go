package vnmea

import (
	"github.com/vuuvv/vnmea/codec"
	"github.com/vuuvv/vnmea/core"
	"github.com/vuuvv/vnmea/framing"
	"github.com/vuuvv/vnmea/log"
	"github.com/vuuvv/vnmea/parser"
	"github.com/vuuvv/vnmea/tcp"
	"github.com/vuuvv/vnmea/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ErrorKind = core.ErrorKind
type ErrorClass = core.ErrorClass
type ModuleID = core.ModuleID
type ModuleMask = core.ModuleMask

type Context = parser.Context
type Config = parser.Config
type FileConfig = parser.FileConfig

var NewContext = parser.NewContext
var DefaultConfig = parser.DefaultConfig
var LoadConfigFile = parser.LoadConfigFile

type LineRule = framing.LineRule

type Codec = codec.Codec
type ScanResult = codec.ScanResult
type Filter = codec.Filter

var NewCodec = codec.NewCodec
var CompileFilter = codec.CompileFilter

type TcpServer = tcp.Server
type TcpServerConfig = tcp.ServerConfig
type TcpConnection = tcp.Connection

var NewTcpServer = tcp.NewServer
var LoadTcpServerConfigFile = tcp.LoadServerConfigFile

// Setup installs a development logger unless a global zap logger is
// already configured.
func Setup() {
	var logger *zap.Logger
	var err error
	if !zap.L().Core().Enabled(zapcore.PanicLevel) {
		logger, err = zap.NewDevelopment()
		utils.PanicIf(err)
	} else {
		logger = zap.L()
	}
	log.SetLogger(logger)
	log.SetDefaultLogger(logger)
}
