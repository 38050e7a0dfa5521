package web

import (
	"net/http"

	"lerobot-metrics/internal/port"
	"lerobot-metrics/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Server 是指标看板的 HTTP 层
// 每次请求都重新读一遍快照文件，数据问题只会降级成页面提示，绝不让进程退出
type Server struct {
	store    port.SnapshotStore
	dataPath string
}

// NewServer 创建看板服务
// dataPath 只用于错误提示里展示文件位置
func NewServer(store port.SnapshotStore, dataPath string) *Server {
	return &Server{store: store, dataPath: dataPath}
}

// Router 组装 gin 路由
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(dashboardTemplate)

	router.GET("/", s.handleDashboard)
	router.GET("/chart", s.handleChart)
	router.GET("/api/snapshots", s.handleSnapshots)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// handleDashboard 渲染主页面：指标磁贴 + 折线图 + 原始表格
// 降级状态（没文件/空文件/坏文件）只展示提示语，后面的区块一概不画
func (s *Server) handleDashboard(c *gin.Context) {
	report := render.Build(s.store, s.dataPath)
	c.HTML(http.StatusOK, "dashboard", gin.H{
		"Report": report,
		"OK":     report.State == render.StateOK,
	})
}

// handleChart 渲染多序列折线图，供主页面以 iframe 方式嵌入
func (s *Server) handleChart(c *gin.Context) {
	report := render.Build(s.store, s.dataPath)
	if report.State != render.StateOK {
		c.String(http.StatusOK, report.Message)
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1150px", Height: "520px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	line.SetXAxis(report.Dates)

	for _, series := range report.Series {
		points := make([]opts.LineData, 0, len(series.Values))
		for _, v := range series.Values {
			if v == nil {
				// echarts 用 "-" 表示缺口
				points = append(points, opts.LineData{Value: "-"})
			} else {
				points = append(points, opts.LineData{Value: *v})
			}
		}
		line.AddSeries(series.Label, points,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true}))
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = line.Render(c.Writer)
}

// handleSnapshots 把矫正后的整表以 JSON 形式暴露出来，方便脚本消费
func (s *Server) handleSnapshots(c *gin.Context) {
	report := render.Build(s.store, s.dataPath)
	if report.State != render.StateOK {
		c.JSON(http.StatusOK, gin.H{
			"rows":    []gin.H{},
			"message": report.Message,
		})
		return
	}

	rows := make([]map[string]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		item := make(map[string]string, len(report.Columns))
		for i, col := range report.Columns {
			if i < len(row.Cells) {
				item[col] = row.Cells[i]
			}
		}
		rows = append(rows, item)
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}
