package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/SlpAus/arknights-damage-backend/internal/platform/config"
	"github.com/SlpAus/arknights-damage-backend/internal/platform/database"
	"github.com/SlpAus/arknights-damage-backend/internal/record"
)

// classConfig 描述一个职业的属性取值范围
type classConfig struct {
	atkRange      [2]int
	hpRange       [2]int
	defRange      [2]int
	costRange     [2]int
	mdefRange     [2]int
	blockCount    int
	atkSpeedRange [2]float64
}

var classTypes = []string{"vanguard", "specialist", "guard", "defender", "supporter", "sniper", "caster"}

var classConfigs = map[string]classConfig{
	"vanguard":   {atkRange: [2]int{400, 1000}, hpRange: [2]int{1000, 1500}, defRange: [2]int{200, 350}, costRange: [2]int{8, 15}, blockCount: 1, atkSpeedRange: [2]float64{1.0, 1.0}},
	"specialist": {atkRange: [2]int{1000, 3500}, hpRange: [2]int{2500, 4000}, defRange: [2]int{350, 500}, costRange: [2]int{15, 20}, blockCount: 1, atkSpeedRange: [2]float64{1.0, 1.0}},
	"guard":      {atkRange: [2]int{2000, 3500}, hpRange: [2]int{2500, 4000}, defRange: [2]int{500, 700}, costRange: [2]int{15, 20}, blockCount: 1, atkSpeedRange: [2]float64{1.0, 1.0}},
	"defender":   {atkRange: [2]int{1500, 2000}, hpRange: [2]int{4000, 6000}, defRange: [2]int{800, 1000}, costRange: [2]int{21, 25}, blockCount: 3, atkSpeedRange: [2]float64{1.0, 1.0}},
	"supporter":  {atkRange: [2]int{1000, 1500}, hpRange: [2]int{1500, 2500}, defRange: [2]int{80, 200}, costRange: [2]int{15, 20}, blockCount: 1, atkSpeedRange: [2]float64{1.0, 1.0}},
	"sniper":     {atkRange: [2]int{4000, 5000}, hpRange: [2]int{1500, 2500}, defRange: [2]int{80, 200}, costRange: [2]int{15, 20}, blockCount: 1, atkSpeedRange: [2]float64{1.0, 2.25}},
	"caster":     {atkRange: [2]int{4000, 5000}, hpRange: [2]int{1500, 2500}, defRange: [2]int{80, 200}, costRange: [2]int{15, 20}, mdefRange: [2]int{15, 30}, blockCount: 1, atkSpeedRange: [2]float64{0.6, 1.0}},
}

var operatorNames = []string{
	"银灰", "陈", "斯卡蒂", "艾雅法拉", "伊芙利特", "能天使", "推进之王", "闪灵",
	"夜莺", "白面鸮", "凛冬", "德克萨斯", "拉普兰德", "蓝毒", "白金", "陨星",
	"梅尔", "华法琳", "雷蛇", "红", "崖心", "凯尔希", "山", "棘刺",
	"森蚺", "煌", "鞭刃", "诗怀雅", "空爆", "送葬人", "玫兰莎", "杜林",
	"安德切尔", "史都华德", "芬", "香草", "翎羽", "克洛丝", "炎熔", "芙蓉",
	"杰西卡", "流星", "白雪", "安赛尔", "嘉维尔", "缠丸", "月见夜", "泡普卡",
}

// deviate 给数值加上±percent%的随机浮动
func deviate(value float64, percent float64) float64 {
	deviation := value * (percent / 100)
	return value + (rand.Float64()*2-1)*deviation
}

func randomIn(r [2]int) int {
	if r[1] <= r[0] {
		return r[0]
	}
	return r[0] + rand.Intn(r[1]-r[0]+1)
}

// attackTypeFor 按职业决定攻击类型：术士必定法伤，射手必定物伤，
// 其余职业有5%的概率是法伤
func attackTypeFor(classType string) string {
	switch classType {
	case "caster":
		return operator.AtkTypeMagical
	case "sniper":
		return operator.AtkTypePhysical
	default:
		if rand.Float64() < 0.05 {
			return operator.AtkTypeMagical
		}
		return operator.AtkTypePhysical
	}
}

// generate 生成count个样例干员输入，名称用尽时提前截断
func generate(count int) []operator.Input {
	names := append([]string(nil), operatorNames...)
	rand.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	inputs := []operator.Input{}
	for i := 0; i < count && i < len(names); i++ {
		classType := classTypes[rand.Intn(len(classTypes))]
		cfg := classConfigs[classType]

		atkSpeed := cfg.atkSpeedRange[0]
		if cfg.atkSpeedRange[1] > cfg.atkSpeedRange[0] {
			atkSpeed = cfg.atkSpeedRange[0] + rand.Float64()*(cfg.atkSpeedRange[1]-cfg.atkSpeedRange[0])
		}

		mdef := 0
		if cfg.mdefRange[1] > 0 {
			mdef = int(deviate(float64(randomIn(cfg.mdefRange)), 1.0))
		}

		inputs = append(inputs, operator.Input{
			Name:       names[i],
			ClassType:  classType,
			HP:         int(deviate(float64(randomIn(cfg.hpRange)), 1.0)),
			Atk:        int(deviate(float64(randomIn(cfg.atkRange)), 1.0)),
			Def:        int(deviate(float64(randomIn(cfg.defRange)), 1.0)),
			Mdef:       mdef,
			AtkSpeed:   deviate(atkSpeed, 1.0),
			AtkType:    attackTypeFor(classType),
			BlockCount: cfg.blockCount,
			Cost:       int(deviate(float64(randomIn(cfg.costRange)), 1.0)),
		})
	}
	return inputs
}

func main() {
	count := flag.Int("count", 20, "生成的样例干员数量")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("配置加载失败: %v", err))
	}

	db, err := database.Open(cfg.Database.Sqlite.Path)
	if err != nil {
		panic(fmt.Sprintf("打开数据库失败: %v", err))
	}
	if err := operator.PrimeDB(db); err != nil {
		panic(fmt.Sprintf("初始化数据库失败: %v", err))
	}
	if err := record.PrimeDB(db); err != nil {
		panic(fmt.Sprintf("初始化数据库失败: %v", err))
	}

	operatorRepo := operator.NewRepository(db)
	recordRepo := record.NewRepository(db)

	// 通过仓库逐个插入，沿用分配器的ID分配规则
	inserted, skipped := 0, 0
	for _, in := range generate(*count) {
		if _, err := operatorRepo.Insert(in); err != nil {
			fmt.Printf("跳过 %s: %v\n", in.Name, err)
			skipped++
			continue
		}
		inserted++
	}

	status := record.StatusSuccess
	if inserted == 0 {
		status = record.StatusFailure
	} else if skipped > 0 {
		status = record.StatusPartial
	}
	if _, err := recordRepo.RecordImport("sample_generate", "cmd/seed", inserted, status, ""); err != nil {
		fmt.Printf("警告: 导入记录写入失败: %v\n", err)
	}

	fmt.Printf("样例数据生成完成：插入 %d 个干员，跳过 %d 个。\n", inserted, skipped)
}
