package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"circuitsheet"
	"circuitsheet/chart"
	"circuitsheet/config"
	"circuitsheet/server"
	"circuitsheet/types"
	"circuitsheet/utils"
)

const usage = `usage: circuitsheet [-config file] [-env file] <command> [args]

commands:
  list                          list circuit models by category
  params <id>                   show the inputs of a model
  eval <id> [name=value...]     evaluate a model
  chart <id> [-o out.html] [name=value...]
  plot <id> [-o out.png|svg] [name=value...]
  serve [-addr :8080]           start the HTTP API
`

func main() {
	var (
		configPath = flag.String("config", "circuit.yaml", "YAML config file")
		envFile    = flag.String("env", ".env", "dotenv file")
	)
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	args := flag.Args()
	switch args[0] {
	case "list":
		err = list(os.Stdout)
	case "params":
		err = params(os.Stdout, args[1:])
	case "eval":
		err = eval(os.Stdout, args[1:])
	case "chart":
		err = render(cfg, args[1:], ".html")
	case "plot":
		err = render(cfg, args[1:], "."+cfg.Plot.Format)
	case "serve":
		err = serve(cfg, args[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		var ue *types.UnimplementedError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, "Coming soon:", ue.Name)
			return
		}
		log.Fatalf("%s: %v", args[0], err)
	}
}

// list 按分类列出模型
func list(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	models := circuitsheet.ListModels()
	for _, c := range circuitsheet.Categories() {
		fmt.Fprintf(tw, "%s\n", c)
		for _, m := range models {
			if m.Category != c {
				continue
			}
			mark := ""
			switch {
			case !m.Implemented:
				mark = "(coming soon)"
			case m.HasWaveform:
				mark = "[waveform]"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", m.ID, m.Name, mark)
		}
	}
	return tw.Flush()
}

// params 显示模型输入参数
func params(w io.Writer, args []string) error {
	if len(args) < 1 {
		return errors.New("missing model id")
	}
	ps, err := circuitsheet.Parameters(args[0])
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLABEL\tDEFAULT\tUNIT\tCONSTRAINT")
	for _, p := range ps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Name, p.Label, utils.FromFloat64(p.Default), p.Unit, p.Constraint)
	}
	return tw.Flush()
}

// eval 计算并输出结果
func eval(w io.Writer, args []string) error {
	if len(args) < 1 {
		return errors.New("missing model id")
	}
	fields, rest := utils.ParseAssignments(args[1:])
	if len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	out, err := circuitsheet.Evaluate(args[0], fields)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, o := range out {
		fmt.Fprintf(tw, "%s\t%s\n", o.Label+":", o.Display)
	}
	return tw.Flush()
}

// render 计算并输出网页图表或静态图片，由输出文件扩展名决定
// 全部渲染成功后才写文件
func render(cfg *config.Config, args []string, ext string) error {
	if len(args) < 1 {
		return errors.New("missing model id")
	}
	id := args[0]
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	out := fs.String("o", id+ext, "output file")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	fields, rest := utils.ParseAssignments(fs.Args())
	if len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	info, err := circuitsheet.Info(id)
	if err != nil {
		return err
	}
	res, err := circuitsheet.Calculate(id, fields)
	if err != nil {
		return err
	}
	rec := chart.NewRecord(info.Name, res)

	var buf bytes.Buffer
	switch format := strings.TrimPrefix(filepath.Ext(*out), "."); format {
	case "html":
		err = chart.NewCharts(rec, cfg.ChartOptions()).Render(&buf)
	case "json":
		err = rec.Render(&buf)
	default:
		var p *chart.Plot
		if p, err = chart.NewPlot(rec, cfg.Plot.Width, cfg.Plot.Height, format); err == nil {
			_, err = p.WriteTo(&buf)
		}
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.Printf("已输出: %s", *out)
	return nil
}

// serve 启动 HTTP 服务，收到中断信号后关闭
func serve(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", cfg.HTTP.Addr, "HTTP listen addr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.HTTP.Addr = *addr

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(cfg).ListenAndServe(ctx)
}
