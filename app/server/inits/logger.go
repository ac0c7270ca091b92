package inits

import (
	"fmt"
	"go.uber.org/zap"
)

func Logger(debugMode bool) (*zap.Logger, error) {
	var zcfg zap.Config
	if debugMode {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.DisableStacktrace = true // 生产环境的 4xx/5xx 日志不需要堆栈
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l.Named("portfolio"), nil
}
