// Package dashboard собирает представление дашборда из уже загруженных коллекций
// проектов, технических заявок и заявок на переоформление собственности.
//
// Все функции пакета чистые: без I/O, без ошибок, безопасны для конкурентного вызова.
// Некорректные входные данные дают вырожденный, но валидный результат (нули, пустые списки).
package dashboard
