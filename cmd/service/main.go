// File: cmd/service/main.go
// @title        Freelance Hub API
// @version      1.0
// @description  外包案件媒合平台的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
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
