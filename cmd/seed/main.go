package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/colonyops/mission-manager/backend/internal/config"
	"github.com/colonyops/mission-manager/backend/internal/repository"
	"github.com/colonyops/mission-manager/backend/internal/seed"
	"github.com/colonyops/mission-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入固定示例数据, 2: 插入随机用户, 3: 插入随机任务)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	if cfg.Database.Automigrate {
		if err := repo.Migrate(); err != nil {
			logger.Error("执行数据库迁移失败", "error", err)
			return
		}
	}

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		seed.SeedSampleData(repo)
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			user := utils.GenerateRandomUser()
			if err := repo.CreateUser(user); err != nil {
				slog.Error("无法插入用户", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入用户成功", slog.Int("count", n-cnt))
	case 3:
		if n <= 0 {
			slog.Error("请输入合法的任务数量")
			return
		}

		// 从已有最大 id 之后开始分配，避免和已有任务冲突
		jobs, err := repo.GetAllJobs()
		if err != nil {
			slog.Error("无法获取已有任务", slog.String("error", err.Error()))
			return
		}

		var maxID int64
		for _, job := range jobs {
			if job.ID > maxID {
				maxID = job.ID
			}
		}

		cnt := n
		for i := 0; i < n; i++ {
			job := utils.GenerateRandomJob(maxID + int64(i) + 1)
			if err := repo.CreateJob(job); err != nil {
				slog.Error("无法插入任务", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入任务成功", slog.Int("count", n-cnt))
	default:
		slog.Error("指定的操作非法")
	}
}
