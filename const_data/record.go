package const_data

import (
	"errors"
	"fmt"

	"go-splendor/entities"

	"go.uber.org/multierr"
)

// ErrConfiguration 卡牌/贵族数据缺失或格式错误，属于启动期致命错误
var ErrConfiguration = errors.New("卡牌数据配置错误")

// Record 数据表中的一行：tier=0 表示贵族，1~3 表示发展卡
type Record struct {
	Tier     int    `mapstructure:"tier" yaml:"tier"`
	Diamond  int    `mapstructure:"diamond" yaml:"diamond"`
	Sapphire int    `mapstructure:"sapphire" yaml:"sapphire"`
	Emerald  int    `mapstructure:"emerald" yaml:"emerald"`
	Ruby     int    `mapstructure:"ruby" yaml:"ruby"`
	Onyx     int    `mapstructure:"onyx" yaml:"onyx"`
	Points   int    `mapstructure:"points" yaml:"points"`
	Type     string `mapstructure:"type" yaml:"type"` // 折扣颜色，贵族行忽略
}

func (r Record) IsNoble() bool {
	return r.Tier == 0
}

func (r Record) Cost() entities.Resources {
	return entities.NewResources(r.Diamond, r.Sapphire, r.Emerald, r.Onyx, r.Ruby)
}

// Bonus 解析发展卡的折扣颜色
func (r Record) Bonus() (entities.Resource, error) {
	kind, err := entities.ParseResource(r.Type)
	if err != nil {
		return 0, err
	}
	if kind.IsGold() {
		return 0, fmt.Errorf("发展卡折扣颜色不能是 %s", kind)
	}
	return kind, nil
}

func (r Record) validate() error {
	var err error
	if r.Tier < 0 || r.Tier > entities.MaxTier {
		err = multierr.Append(err, fmt.Errorf("tier %d 超出范围 0~%d", r.Tier, entities.MaxTier))
	}
	for _, n := range []int{r.Diamond, r.Sapphire, r.Emerald, r.Ruby, r.Onyx} {
		if n < 0 {
			err = multierr.Append(err, fmt.Errorf("费用不能为负数: %d", n))
			break
		}
	}
	if r.Points < 0 {
		err = multierr.Append(err, fmt.Errorf("分数不能为负数: %d", r.Points))
	}
	if r.IsNoble() && r.Points != entities.NoblePoints {
		err = multierr.Append(err, fmt.Errorf("贵族分数必须为 %d: %d", entities.NoblePoints, r.Points))
	}
	if !r.IsNoble() {
		if _, bonusErr := r.Bonus(); bonusErr != nil {
			err = multierr.Append(err, bonusErr)
		}
	}
	return err
}

// Validate 校验全部数据行，一次性返回所有错误
func Validate(records []Record) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: 数据为空", ErrConfiguration)
	}
	var errs error
	for i, rec := range records {
		if err := rec.validate(); err != nil {
			for _, e := range multierr.Errors(err) {
				errs = multierr.Append(errs, fmt.Errorf("%w: 第 %d 条记录: %v", ErrConfiguration, i+1, e))
			}
		}
	}
	return errs
}
