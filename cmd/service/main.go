// @title        Gideon API
// @version      1.0
// @description  Gideon 訓練與飲食計畫服務 API 文件
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"os"
)

var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
